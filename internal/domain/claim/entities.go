package claim

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("claim not found")
	ErrPolicyNotActive = errors.New("user policy is not active")
	ErrInvalidDecision = errors.New("status must be APPROVED or REJECTED")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Claim is filed against a user policy that is ACTIVE at submission time.
// ClaimRef is the public 32-hex reference quoted to the customer.
// ReviewerComment/ResolvedDate are set by adjudication only.
type Claim struct {
	ID              uint64     `gorm:"primaryKey;column:id" json:"id"`
	ClaimRef        string     `gorm:"size:32;uniqueIndex:ux_claims_claim_ref" json:"claim_ref"`
	UserPolicyID    uint64     `gorm:"index:idx_claims_user_policy" json:"user_policy_id"`
	ClaimDate       time.Time  `gorm:"type:date" json:"claim_date"`
	ClaimAmount     float64    `gorm:"type:decimal(18,2)" json:"claim_amount"`
	Reason          string     `gorm:"type:text" json:"reason"`
	Status          Status     `gorm:"type:enum('PENDING','APPROVED','REJECTED');default:'PENDING'" json:"status"`
	ReviewerComment *string    `gorm:"type:text" json:"reviewer_comment,omitempty"`
	ResolvedDate    *time.Time `gorm:"type:date" json:"resolved_date,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (Claim) TableName() string { return "claims" }
