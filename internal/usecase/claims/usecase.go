package claims

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"insurance-backend/internal/domain/claim"
	"insurance-backend/internal/domain/userpolicy"
	"insurance-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	claims       claim.Repository
	userPolicies userpolicy.Repository
}

func NewUsecase(claims claim.Repository, userPolicies userpolicy.Repository) *Usecase {
	return &Usecase{claims: claims, userPolicies: userPolicies}
}

type SubmitInput struct {
	UserPolicyID uint64
	ClaimAmount  float64
	Reason       string
}

func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Submit files a claim against a user policy. The policy must be ACTIVE at
// submission time; a later cancellation does not touch the claim.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*claim.Claim, error) {
	log.Printf("claims: submitting claim for user policy %d", in.UserPolicyID)

	up, err := u.userPolicies.GetByID(ctx, in.UserPolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userpolicy.ErrNotFound
		}
		return nil, err
	}
	if up.Status != userpolicy.StatusActive {
		return nil, claim.ErrPolicyNotActive
	}

	c := &claim.Claim{
		ClaimRef:     id.NewID32(),
		UserPolicyID: up.ID,
		ClaimDate:    todayUTC(),
		ClaimAmount:  in.ClaimAmount,
		Reason:       in.Reason,
		Status:       claim.StatusPending,
	}
	if err := u.claims.Create(ctx, c); err != nil {
		return nil, err
	}
	log.Printf("claims: submitted claim %d (%s)", c.ID, c.ClaimRef)
	return c, nil
}

// ListForUser reports not-found when the user has no claims; an unknown user
// and a claimless user are indistinguishable here, mirroring the stored data.
func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]claim.Claim, error) {
	cs, err := u.claims.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cs) == 0 {
		return nil, claim.ErrNotFound
	}
	return cs, nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]claim.Claim, error) {
	return u.claims.ListAll(ctx)
}

func (u *Usecase) Get(ctx context.Context, claimID uint64) (*claim.Claim, error) {
	c, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Adjudicate resolves a claim. Decision is case-insensitive APPROVED or
// REJECTED. Re-adjudicating an already resolved claim is allowed and simply
// overwrites the previous decision.
func (u *Usecase) Adjudicate(ctx context.Context, claimID uint64, decision, reviewerComment string) (*claim.Claim, error) {
	log.Printf("claims: adjudicating claim %d -> %s", claimID, decision)

	c, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}

	status := claim.Status(strings.ToUpper(decision))
	if status != claim.StatusApproved && status != claim.StatusRejected {
		return nil, claim.ErrInvalidDecision
	}

	resolved := todayUTC()
	c.Status = status
	c.ReviewerComment = &reviewerComment
	c.ResolvedDate = &resolved

	if err := u.claims.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Remove(ctx context.Context, claimID uint64) error {
	log.Printf("claims: deleting claim %d", claimID)

	exists, err := u.claims.ExistsByID(ctx, claimID)
	if err != nil {
		return err
	}
	if !exists {
		return claim.ErrNotFound
	}
	return u.claims.Delete(ctx, claimID)
}
