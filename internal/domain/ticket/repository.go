package ticket

import "context"

type Repository interface {
	Create(ctx context.Context, t *SupportTicket) error
	Save(ctx context.Context, t *SupportTicket) error
	GetByID(ctx context.Context, id uint64) (*SupportTicket, error)
	// GetByIDForUpdate locks the row for the remainder of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*SupportTicket, error)
	ListByUser(ctx context.Context, userID uint64) ([]SupportTicket, error)
	ListAll(ctx context.Context) ([]SupportTicket, error)
	Delete(ctx context.Context, id uint64) error
}
