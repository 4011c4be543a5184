package renewal

import (
	"context"
	"errors"
	"log"
	"time"

	"insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/domain/uow"
	"insurance-backend/internal/domain/userpolicy"

	"gorm.io/gorm"
)

// renewalWindowDays is how far before expiry a policy becomes renewable.
const renewalWindowDays = 30

type Usecase struct {
	userPolicies userpolicy.Repository
	policies     catalog.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(userPolicies userpolicy.Repository, policies catalog.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{userPolicies: userPolicies, policies: policies, uow: tx}
}

// RenewablePolicy is the summary shown on the renewal screen.
type RenewablePolicy struct {
	UserPolicyID       uint64    `json:"user_policy_id"`
	PolicyName         string    `json:"policy_name"`
	EndDate            time.Time `json:"end_date"`
	PremiumPaid        float64   `json:"premium_paid"`
	RenewalPremiumRate float64   `json:"renewal_premium_rate"`
}

func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysToEnd is the signed whole-day distance from today to the policy's end
// date. Zero or negative means the term has run out.
func daysToEnd(endDate, today time.Time) int {
	return int(endDate.Sub(today).Hours() / 24)
}

// eligible: an ACTIVE policy inside the 30-day window before expiry, or any
// policy whose term has already run out regardless of its recorded status.
func eligible(up *userpolicy.UserPolicy, today time.Time) bool {
	d := daysToEnd(up.EndDate, today)
	expiringSoon := d > 0 && d <= renewalWindowDays
	expired := d <= 0
	return (up.Status == userpolicy.StatusActive && expiringSoon) || expired
}

// ListRenewable returns the user's policies that currently qualify for
// renewal. A user with no policies at all is reported as not found; a user
// whose policies simply don't qualify gets an empty list.
func (u *Usecase) ListRenewable(ctx context.Context, userID uint64) ([]RenewablePolicy, error) {
	log.Printf("renewal: listing renewable policies for user %d", userID)

	ups, err := u.userPolicies.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ups) == 0 {
		return nil, userpolicy.ErrNotFound
	}

	today := todayUTC()
	out := make([]RenewablePolicy, 0)
	for i := range ups {
		up := &ups[i]
		if !eligible(up, today) {
			continue
		}
		p, err := u.policies.GetByID(ctx, up.PolicyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, catalog.ErrNotFound
			}
			return nil, err
		}
		out = append(out, RenewablePolicy{
			UserPolicyID:       up.ID,
			PolicyName:         p.Name,
			EndDate:            up.EndDate,
			PremiumPaid:        up.PremiumPaid,
			RenewalPremiumRate: p.RenewalPremiumRate,
		})
	}
	return out, nil
}

// Renew starts a fresh term today: premiumPaid becomes the template's
// renewalPremiumRate (an absolute charge, despite the name), the term runs
// today..today+duration and the status returns to ACTIVE. Policies more than
// 30 days from expiry are rejected.
func (u *Usecase) Renew(ctx context.Context, userPolicyID uint64) (*userpolicy.UserPolicy, error) {
	log.Printf("renewal: renewing user policy %d", userPolicyID)

	var out *userpolicy.UserPolicy
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		up, err := r.UserPolicies.GetByIDForUpdate(ctx, userPolicyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userpolicy.ErrNotFound
			}
			return err
		}

		today := todayUTC()
		if daysToEnd(up.EndDate, today) > renewalWindowDays {
			return userpolicy.ErrNotRenewable
		}

		p, err := r.Policies.GetByID(ctx, up.PolicyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.ErrNotFound
			}
			return err
		}

		up.PremiumPaid = p.RenewalPremiumRate
		up.StartDate = today
		up.EndDate = today.AddDate(0, p.DurationMonths, 0)
		up.Status = userpolicy.StatusActive

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
