package mysql

import (
	"context"

	upDomain "insurance-backend/internal/domain/userpolicy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserPolicyRepository struct{ db *gorm.DB }

func NewUserPolicyRepository(db *gorm.DB) *UserPolicyRepository {
	return &UserPolicyRepository{db: db}
}

func (r *UserPolicyRepository) Create(ctx context.Context, up *upDomain.UserPolicy) error {
	return r.db.WithContext(ctx).Create(up).Error
}

func (r *UserPolicyRepository) Save(ctx context.Context, up *upDomain.UserPolicy) error {
	return r.db.WithContext(ctx).Save(up).Error
}

func (r *UserPolicyRepository) GetByID(ctx context.Context, id uint64) (*upDomain.UserPolicy, error) {
	var out upDomain.UserPolicy
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *UserPolicyRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*upDomain.UserPolicy, error) {
	var out upDomain.UserPolicy
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *UserPolicyRepository) GetByUserAndPolicy(ctx context.Context, userID, policyID uint64) (*upDomain.UserPolicy, error) {
	var out upDomain.UserPolicy
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND policy_id = ?", userID, policyID).
		First(&out)
	return &out, res.Error
}

func (r *UserPolicyRepository) ListByUser(ctx context.Context, userID uint64) ([]upDomain.UserPolicy, error) {
	var out []upDomain.UserPolicy
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *UserPolicyRepository) ExistsByUserAndPolicy(ctx context.Context, userID, policyID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&upDomain.UserPolicy{}).
		Where("user_id = ? AND policy_id = ?", userID, policyID).
		Count(&n)
	return n > 0, res.Error
}
