package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type userSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"size:120"`
	Email     string    `gorm:"size:255;uniqueIndex:ux_users_email"`
	Password  string    `gorm:"size:72"`
	Phone     string    `gorm:"size:32"`
	Address   string    `gorm:"type:text"`
	Role      string    `gorm:"type:text"` // ← no enum
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (userSQLite) TableName() string { return "users" }

type policySQLite struct {
	ID                 uint64 `gorm:"primaryKey;column:id"`
	Name               string `gorm:"size:120"`
	Description        string `gorm:"type:text"`
	PremiumAmount      float64
	CoverageAmount     float64
	DurationMonths     int
	RenewalPremiumRate float64
	Category           string    `gorm:"type:text"` // ← no enum
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (policySQLite) TableName() string { return "policies" }

type userPolicySQLite struct {
	ID          uint64 `gorm:"primaryKey;column:id"`
	UserID      uint64 `gorm:"index:idx_user_policies_user;uniqueIndex:ux_user_policies_user_policy"`
	PolicyID    uint64 `gorm:"uniqueIndex:ux_user_policies_user_policy"`
	StartDate   time.Time
	EndDate     time.Time
	Status      string    `gorm:"type:text"` // ← no enum
	PremiumPaid float64
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (userPolicySQLite) TableName() string { return "user_policies" }

type claimSQLite struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	ClaimRef        string `gorm:"size:32;uniqueIndex:ux_claims_claim_ref"`
	UserPolicyID    uint64 `gorm:"index:idx_claims_user_policy"`
	ClaimDate       time.Time
	ClaimAmount     float64
	Reason          string    `gorm:"type:text"`
	Status          string    `gorm:"type:text"` // ← no enum
	ReviewerComment *string   `gorm:"type:text"`
	ResolvedDate    *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (claimSQLite) TableName() string { return "claims" }

type ticketSQLite struct {
	ID          uint64 `gorm:"primaryKey;column:id"`
	UserID      uint64 `gorm:"index:idx_support_tickets_user"`
	PolicyID    *uint64
	ClaimID     *uint64
	Subject     string    `gorm:"size:200"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:text"` // ← no enum
	Response    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	ResolvedAt  *time.Time
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ticketSQLite) TableName() string { return "support_tickets" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&userSQLite{}, &policySQLite{}, &userPolicySQLite{}, &claimSQLite{}, &ticketSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
