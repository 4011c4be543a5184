package ticket

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("support ticket not found")
	ErrAlreadyClosed     = errors.New("support ticket is already closed")
	ErrInvalidTransition = errors.New("invalid support ticket status transition")
	ErrForbiddenLink     = errors.New("linked resource not found or doesn't belong to user")
)

type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusResolved Status = "RESOLVED"
	StatusClosed   Status = "CLOSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// SupportTicket may optionally reference one of the creating user's policies
// and/or claims. CLOSED is terminal.
type SupportTicket struct {
	ID          uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID      uint64     `gorm:"index:idx_support_tickets_user" json:"user_id"`
	PolicyID    *uint64    `json:"policy_id,omitempty"`
	ClaimID     *uint64    `json:"claim_id,omitempty"`
	Subject     string     `gorm:"size:200" json:"subject"`
	Description string     `gorm:"type:text" json:"description"`
	Status      Status     `gorm:"type:enum('OPEN','RESOLVED','CLOSED');default:'OPEN'" json:"status"`
	Response    *string    `gorm:"type:text" json:"response,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (SupportTicket) TableName() string { return "support_tickets" }
