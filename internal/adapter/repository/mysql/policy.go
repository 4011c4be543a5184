package mysql

import (
	"context"

	catalogDomain "insurance-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type PolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) *PolicyRepository { return &PolicyRepository{db: db} }

func (r *PolicyRepository) Create(ctx context.Context, p *catalogDomain.Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PolicyRepository) GetByID(ctx context.Context, id uint64) (*catalogDomain.Policy, error) {
	var out catalogDomain.Policy
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PolicyRepository) List(ctx context.Context) ([]catalogDomain.Policy, error) {
	var out []catalogDomain.Policy
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *PolicyRepository) Save(ctx context.Context, p *catalogDomain.Policy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PolicyRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&catalogDomain.Policy{}, id).Error
}
