package userpolicymock

import (
	"context"

	domain "insurance-backend/internal/domain/userpolicy"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies userpolicy.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, up *domain.UserPolicy) error
	SaveFn                  func(ctx context.Context, up *domain.UserPolicy) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.UserPolicy, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint64) (*domain.UserPolicy, error)
	GetByUserAndPolicyFn    func(ctx context.Context, userID, policyID uint64) (*domain.UserPolicy, error)
	ListByUserFn            func(ctx context.Context, userID uint64) ([]domain.UserPolicy, error)
	ExistsByUserAndPolicyFn func(ctx context.Context, userID, policyID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, up *domain.UserPolicy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, up)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, up *domain.UserPolicy) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, up)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.UserPolicy, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.UserPolicy, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByUserAndPolicy(ctx context.Context, userID, policyID uint64) (*domain.UserPolicy, error) {
	if m.GetByUserAndPolicyFn != nil {
		return m.GetByUserAndPolicyFn(ctx, userID, policyID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.UserPolicy, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) ExistsByUserAndPolicy(ctx context.Context, userID, policyID uint64) (bool, error) {
	if m.ExistsByUserAndPolicyFn != nil {
		return m.ExistsByUserAndPolicyFn(ctx, userID, policyID)
	}
	return false, nil
}
