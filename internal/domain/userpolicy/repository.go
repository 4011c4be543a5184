package userpolicy

import "context"

type Repository interface {
	Create(ctx context.Context, up *UserPolicy) error
	Save(ctx context.Context, up *UserPolicy) error
	GetByID(ctx context.Context, id uint64) (*UserPolicy, error)
	// GetByIDForUpdate locks the row for the remainder of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*UserPolicy, error)
	GetByUserAndPolicy(ctx context.Context, userID, policyID uint64) (*UserPolicy, error)
	ListByUser(ctx context.Context, userID uint64) ([]UserPolicy, error)
	ExistsByUserAndPolicy(ctx context.Context, userID, policyID uint64) (bool, error)
}
