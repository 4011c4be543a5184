package userpolicy

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("user policy not found")
	ErrAlreadyOwned = errors.New("user has already purchased this policy")
	ErrNotRenewable = errors.New("policy is not eligible for renewal yet")
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
	StatusRenewed   Status = "RENEWED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusCancelled, StatusRenewed:
		return true
	}
	return false
}

// UserPolicy is a user's purchased instance of a catalog policy, with its own
// term dates, status and the premium actually charged for the current term.
// StartDate/EndDate are calendar dates stored at midnight UTC.
type UserPolicy struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	UserID      uint64    `gorm:"index:idx_user_policies_user;uniqueIndex:ux_user_policies_user_policy" json:"user_id"`
	PolicyID    uint64    `gorm:"uniqueIndex:ux_user_policies_user_policy" json:"policy_id"`
	StartDate   time.Time `gorm:"type:date" json:"start_date"`
	EndDate     time.Time `gorm:"type:date" json:"end_date"`
	Status      Status    `gorm:"type:enum('ACTIVE','EXPIRED','CANCELLED','RENEWED');default:'ACTIVE'" json:"status"`
	PremiumPaid float64   `gorm:"type:decimal(18,2)" json:"premium_paid"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (UserPolicy) TableName() string { return "user_policies" }
