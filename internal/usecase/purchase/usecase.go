package purchase

import (
	"context"
	"errors"
	"log"
	"time"

	"insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/domain/uow"
	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/domain/userpolicy"

	"gorm.io/gorm"
)

type Usecase struct {
	users        user.Repository
	userPolicies userpolicy.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(users user.Repository, userPolicies userpolicy.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, userPolicies: userPolicies, uow: tx}
}

func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Purchase binds a catalog policy to a user. At most one binding per
// (user, policy) pair; the guard and the insert run in one transaction.
func (u *Usecase) Purchase(ctx context.Context, policyID, userID uint64) (*userpolicy.UserPolicy, error) {
	log.Printf("purchase: policy %d for user %d", policyID, userID)

	var out *userpolicy.UserPolicy
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		exists, err := r.UserPolicies.ExistsByUserAndPolicy(ctx, userID, policyID)
		if err != nil {
			return err
		}
		if exists {
			return userpolicy.ErrAlreadyOwned
		}

		p, err := r.Policies.GetByID(ctx, policyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.ErrNotFound
			}
			return err
		}

		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		start := todayUTC()
		up := &userpolicy.UserPolicy{
			UserID:      userID,
			PolicyID:    p.ID,
			StartDate:   start,
			EndDate:     start.AddDate(0, p.DurationMonths, 0),
			Status:      userpolicy.StatusActive,
			PremiumPaid: p.PremiumAmount,
		}
		if err := r.UserPolicies.Create(ctx, up); err != nil {
			return err
		}
		out = up
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListPurchased returns every policy the user holds. An unknown user is an
// error even though the list itself could simply be empty.
func (u *Usecase) ListPurchased(ctx context.Context, userID uint64) ([]userpolicy.UserPolicy, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return u.userPolicies.ListByUser(ctx, userID)
}

// UpdateStatus sets the binding's status directly. CANCELLED truncates the
// term to today; RENEWED stacks a further term onto the current end date and
// leaves premiumPaid untouched (the renewal engine's Renew has different
// semantics on purpose).
func (u *Usecase) UpdateStatus(ctx context.Context, policyID, userID uint64, status userpolicy.Status) (*userpolicy.UserPolicy, error) {
	log.Printf("update status: policy %d user %d -> %s", policyID, userID, status)

	var out *userpolicy.UserPolicy
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		up, err := r.UserPolicies.GetByUserAndPolicy(ctx, userID, policyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userpolicy.ErrNotFound
			}
			return err
		}

		up.Status = status
		switch status {
		case userpolicy.StatusCancelled:
			up.EndDate = todayUTC()
		case userpolicy.StatusRenewed:
			p, err := r.Policies.GetByID(ctx, up.PolicyID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return catalog.ErrNotFound
				}
				return err
			}
			up.EndDate = up.EndDate.AddDate(0, p.DurationMonths, 0)
		}

		if err := r.UserPolicies.Save(ctx, up); err != nil {
			return err
		}
		out = up
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
