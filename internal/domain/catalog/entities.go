package catalog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("policy not found")

type Category string

const (
	CategoryLife    Category = "LIFE"
	CategoryHealth  Category = "HEALTH"
	CategoryVehicle Category = "VEHICLE"
)

// Policy is the admin-managed catalog template a user can purchase.
// RenewalPremiumRate is the absolute amount charged at renewal, not a
// multiplier (see renewal usecase).
type Policy struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name               string    `gorm:"size:120" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	PremiumAmount      float64   `gorm:"type:decimal(18,2)" json:"premium_amount"`
	CoverageAmount     float64   `gorm:"type:decimal(18,2)" json:"coverage_amount"`
	DurationMonths     int       `json:"duration_months"`
	RenewalPremiumRate float64   `gorm:"type:decimal(18,2)" json:"renewal_premium_rate"`
	Category           Category  `gorm:"type:enum('LIFE','HEALTH','VEHICLE')" json:"category"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Policy) TableName() string { return "policies" }
