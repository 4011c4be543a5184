package db

import (
	"context"
	"log"
	"time"

	"insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/domain/claim"
	"insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/domain/userpolicy"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every entity the service owns.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&user.User{},
		&catalog.Policy{},
		&userpolicy.UserPolicy{},
		&claim.Claim{},
		&ticket.SupportTicket{},
	)
}

// Seed loads a starter data set on first boot only (empty users table).
func Seed(ctx context.Context, g *gorm.DB) error {
	var n int64
	if err := g.WithContext(ctx).Model(&user.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Println("seed: existing data found, skipping")
		return nil
	}
	log.Println("seed: loading initial data")

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), 12)
		return string(h)
	}

	admin := user.User{
		Name: "Admin", Email: "admin@insurance.local",
		Password: hash("admin123"), Role: user.RoleAdmin,
	}
	demo := user.User{
		Name: "Demo User", Email: "demo@insurance.local",
		Password: hash("demo123"), Phone: "5550100", Role: user.RoleUser,
	}
	if err := g.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	if err := g.WithContext(ctx).Create(&demo).Error; err != nil {
		return err
	}

	policies := []catalog.Policy{
		{
			Name: "Term Life Shield", Description: "12-month term life cover",
			PremiumAmount: 1200, CoverageAmount: 500000, DurationMonths: 12,
			RenewalPremiumRate: 1100, Category: catalog.CategoryLife,
			CreatedAt: time.Now().UTC(),
		},
		{
			Name: "Family Health Plus", Description: "Cashless hospitalization for the family",
			PremiumAmount: 800, CoverageAmount: 300000, DurationMonths: 12,
			RenewalPremiumRate: 750, Category: catalog.CategoryHealth,
			CreatedAt: time.Now().UTC(),
		},
		{
			Name: "Motor Secure", Description: "Comprehensive vehicle cover",
			PremiumAmount: 400, CoverageAmount: 150000, DurationMonths: 6,
			RenewalPremiumRate: 380, Category: catalog.CategoryVehicle,
			CreatedAt: time.Now().UTC(),
		},
	}
	if err := g.WithContext(ctx).Create(&policies).Error; err != nil {
		return err
	}

	log.Println("seed: done")
	return nil
}
