package catalog

import (
	"context"
	"errors"
	"log"
	"time"

	domain "insurance-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type PolicyInput struct {
	Name               string
	Description        string
	PremiumAmount      float64
	CoverageAmount     float64
	DurationMonths     int
	RenewalPremiumRate float64
	Category           domain.Category
}

func (u *Usecase) Create(ctx context.Context, in PolicyInput) (*domain.Policy, error) {
	log.Printf("catalog: creating policy %q", in.Name)

	p := &domain.Policy{
		Name:               in.Name,
		Description:        in.Description,
		PremiumAmount:      in.PremiumAmount,
		CoverageAmount:     in.CoverageAmount,
		DurationMonths:     in.DurationMonths,
		RenewalPremiumRate: in.RenewalPremiumRate,
		Category:           in.Category,
		CreatedAt:          time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Policy, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Policy, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update replaces every template field atomically.
func (u *Usecase) Update(ctx context.Context, id uint64, in PolicyInput) (*domain.Policy, error) {
	log.Printf("catalog: updating policy %d", id)

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.PremiumAmount = in.PremiumAmount
	p.CoverageAmount = in.CoverageAmount
	p.DurationMonths = in.DurationMonths
	p.RenewalPremiumRate = in.RenewalPremiumRate
	p.Category = in.Category

	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	log.Printf("catalog: deleting policy %d", id)

	if _, err := u.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, id)
}
