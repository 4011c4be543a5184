package catalog

import (
	"context"
	"errors"
	"testing"

	domain "insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/testutil/catalogmock"

	"gorm.io/gorm"
)

func input() PolicyInput {
	return PolicyInput{
		Name:               "Motor Secure",
		Description:        "Comprehensive vehicle cover",
		PremiumAmount:      400,
		CoverageAmount:     150000,
		DurationMonths:     6,
		RenewalPremiumRate: 380,
		Category:           domain.CategoryVehicle,
	}
}

func TestCreate(t *testing.T) {
	var created *domain.Policy
	repo := &catalogmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Policy) error {
			p.ID = 3
			created = p
			return nil
		},
	}

	got, err := NewUsecase(repo).Create(context.Background(), input())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil {
		t.Fatalf("Create was not called")
	}
	if got.Category != domain.CategoryVehicle || got.DurationMonths != 6 {
		t.Fatalf("unexpected policy: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("createdAt not stamped")
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &catalogmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Policy, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	_, err := NewUsecase(repo).Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := &catalogmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Policy, error) {
			return &domain.Policy{
				ID: 3, Name: "Old Name", PremiumAmount: 999,
				DurationMonths: 12, Category: domain.CategoryLife,
			}, nil
		},
	}

	got, err := NewUsecase(repo).Update(context.Background(), 3, input())
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if got.Name != "Motor Secure" || got.PremiumAmount != 400 ||
		got.DurationMonths != 6 || got.Category != domain.CategoryVehicle {
		t.Fatalf("fields not fully replaced: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &catalogmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Policy, error) {
			return nil, gorm.ErrRecordNotFound
		},
		SaveFn: func(context.Context, *domain.Policy) error {
			t.Fatalf("Save must not run for a missing template")
			return nil
		},
	}

	_, err := NewUsecase(repo).Update(context.Background(), 99, input())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &catalogmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Policy, error) {
			return nil, gorm.ErrRecordNotFound
		},
		DeleteFn: func(context.Context, uint64) error {
			t.Fatalf("Delete must not run for a missing template")
			return nil
		},
	}

	err := NewUsecase(repo).Delete(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
