package uow

import (
	"context"

	"insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/domain/claim"
	"insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/domain/userpolicy"
)

type Repos struct {
	Users        user.Repository
	Policies     catalog.Repository
	UserPolicies userpolicy.Repository
	Claims       claim.Repository
	Tickets      ticket.Repository
}

// UnitOfWork runs check-then-act sequences inside one transaction so that two
// concurrent callers cannot both pass the same guard.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
