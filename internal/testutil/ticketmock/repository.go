package ticketmock

import (
	"context"

	domain "insurance-backend/internal/domain/ticket"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies ticket.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, t *domain.SupportTicket) error
	SaveFn             func(ctx context.Context, t *domain.SupportTicket) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.SupportTicket, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.SupportTicket, error)
	ListByUserFn       func(ctx context.Context, userID uint64) ([]domain.SupportTicket, error)
	ListAllFn          func(ctx context.Context) ([]domain.SupportTicket, error)
	DeleteFn           func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, t *domain.SupportTicket) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, t *domain.SupportTicket) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.SupportTicket, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.SupportTicket, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.SupportTicket, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) ListAll(ctx context.Context) ([]domain.SupportTicket, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
