package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	Save(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint64) (*Claim, error)
	// ListByUser resolves claims through the owning user's policies.
	ListByUser(ctx context.Context, userID uint64) ([]Claim, error)
	ListAll(ctx context.Context) ([]Claim, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	ExistsByIDAndUser(ctx context.Context, id, userID uint64) (bool, error)
	Delete(ctx context.Context, id uint64) error
}
