package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Policy) error
	GetByID(ctx context.Context, id uint64) (*Policy, error)
	List(ctx context.Context) ([]Policy, error)
	Save(ctx context.Context, p *Policy) error
	Delete(ctx context.Context, id uint64) error
}
