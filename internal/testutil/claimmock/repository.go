package claimmock

import (
	"context"

	domain "insurance-backend/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies claim.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.Claim) error
	SaveFn              func(ctx context.Context, c *domain.Claim) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Claim, error)
	ListByUserFn        func(ctx context.Context, userID uint64) ([]domain.Claim, error)
	ListAllFn           func(ctx context.Context) ([]domain.Claim, error)
	ExistsByIDFn        func(ctx context.Context, id uint64) (bool, error)
	ExistsByIDAndUserFn func(ctx context.Context, id, userID uint64) (bool, error)
	DeleteFn            func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Claim, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) ListAll(ctx context.Context) ([]domain.Claim, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, nil
}
func (m *Repo) ExistsByIDAndUser(ctx context.Context, id, userID uint64) (bool, error) {
	if m.ExistsByIDAndUserFn != nil {
		return m.ExistsByIDAndUserFn(ctx, id, userID)
	}
	return false, nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
