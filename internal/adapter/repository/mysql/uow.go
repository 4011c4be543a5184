package mysql

import (
	"context"

	"insurance-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Users:        &UserRepository{db: tx},
			Policies:     &PolicyRepository{db: tx},
			UserPolicies: &UserPolicyRepository{db: tx},
			Claims:       &ClaimRepository{db: tx},
			Tickets:      &TicketRepository{db: tx},
		}
		return fn(r)
	})
}
