package catalogmock

import (
	"context"

	domain "insurance-backend/internal/domain/catalog"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies catalog.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, p *domain.Policy) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Policy, error)
	ListFn    func(ctx context.Context) ([]domain.Policy, error)
	SaveFn    func(ctx context.Context, p *domain.Policy) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Policy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Policy, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context) ([]domain.Policy, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, p *domain.Policy) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
