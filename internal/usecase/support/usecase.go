package support

import (
	"context"
	"errors"
	"log"
	"time"

	"insurance-backend/internal/domain/claim"
	"insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/domain/uow"
	"insurance-backend/internal/domain/userpolicy"

	"gorm.io/gorm"
)

type Usecase struct {
	tickets      ticket.Repository
	userPolicies userpolicy.Repository
	claims       claim.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(tickets ticket.Repository, userPolicies userpolicy.Repository, claims claim.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{tickets: tickets, userPolicies: userPolicies, claims: claims, uow: tx}
}

type CreateInput struct {
	UserID      uint64
	Subject     string
	Description string
	PolicyID    *uint64
	ClaimID     *uint64
}

// Create opens a ticket. Optional policy/claim links must belong to the
// creating user; a mismatch is reported as a forbidden link before anything
// is written.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ticket.SupportTicket, error) {
	log.Printf("support: creating ticket for user %d: %s", in.UserID, in.Subject)

	if in.PolicyID != nil {
		ok, err := u.userPolicies.ExistsByUserAndPolicy(ctx, in.UserID, *in.PolicyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ticket.ErrForbiddenLink
		}
	}
	if in.ClaimID != nil {
		ok, err := u.claims.ExistsByIDAndUser(ctx, *in.ClaimID, in.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ticket.ErrForbiddenLink
		}
	}

	t := &ticket.SupportTicket{
		UserID:      in.UserID,
		PolicyID:    in.PolicyID,
		ClaimID:     in.ClaimID,
		Subject:     in.Subject,
		Description: in.Description,
		Status:      ticket.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	log.Printf("support: created ticket %d", t.ID)
	return t, nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]ticket.SupportTicket, error) {
	return u.tickets.ListByUser(ctx, userID)
}

func (u *Usecase) ListAll(ctx context.Context) ([]ticket.SupportTicket, error) {
	return u.tickets.ListAll(ctx)
}

func (u *Usecase) Get(ctx context.Context, ticketID uint64) (*ticket.SupportTicket, error) {
	t, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update applies an agent response and a status transition. CLOSED is
// terminal; RESOLVED is only reachable from OPEN. Moving to RESOLVED or
// CLOSED stamps resolvedAt, overwriting any earlier stamp, so a
// RESOLVED→CLOSED step records the close time, not the original resolution.
func (u *Usecase) Update(ctx context.Context, ticketID uint64, response string, status ticket.Status) (*ticket.SupportTicket, error) {
	log.Printf("support: updating ticket %d -> %s", ticketID, status)

	var out *ticket.SupportTicket
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Tickets.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ticket.ErrNotFound
			}
			return err
		}

		if t.Status == ticket.StatusClosed {
			return ticket.ErrAlreadyClosed
		}
		if status == ticket.StatusResolved && t.Status != ticket.StatusOpen {
			return ticket.ErrInvalidTransition
		}

		t.Response = &response
		t.Status = status
		if status == ticket.StatusResolved || status == ticket.StatusClosed {
			now := time.Now().UTC()
			t.ResolvedAt = &now
		}

		if err := r.Tickets.Save(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Remove(ctx context.Context, ticketID uint64) error {
	log.Printf("support: deleting ticket %d", ticketID)

	if _, err := u.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.ErrNotFound
		}
		return err
	}
	return u.tickets.Delete(ctx, ticketID)
}
