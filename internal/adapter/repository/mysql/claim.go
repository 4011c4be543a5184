package mysql

import (
	"context"

	claimDomain "insurance-backend/internal/domain/claim"

	"gorm.io/gorm"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

// ListByUser joins through user_policies: a claim belongs to whoever owns the
// policy it was filed against.
func (r *ClaimRepository) ListByUser(ctx context.Context, userID uint64) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Joins("JOIN user_policies ON user_policies.id = claims.user_policy_id").
		Where("user_policies.user_id = ?", userID).
		Order("claims.id").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListAll(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("id = ?", id).
		Count(&n)
	return n > 0, res.Error
}

func (r *ClaimRepository) ExistsByIDAndUser(ctx context.Context, id, userID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Joins("JOIN user_policies ON user_policies.id = claims.user_policy_id").
		Where("claims.id = ? AND user_policies.user_id = ?", id, userID).
		Count(&n)
	return n > 0, res.Error
}

func (r *ClaimRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&claimDomain.Claim{}, id).Error
}
