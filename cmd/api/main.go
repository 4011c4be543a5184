package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "insurance-backend/internal/adapter/http"
	mw "insurance-backend/internal/adapter/middleware"
	"insurance-backend/internal/adapter/repository/mysql"
	"insurance-backend/internal/config"
	"insurance-backend/internal/infrastructure/cache"
	"insurance-backend/internal/infrastructure/db"
	authuc "insurance-backend/internal/usecase/auth"
	cataloguc "insurance-backend/internal/usecase/catalog"
	claimsuc "insurance-backend/internal/usecase/claims"
	purchaseuc "insurance-backend/internal/usecase/purchase"
	renewaluc "insurance-backend/internal/usecase/renewal"
	supportuc "insurance-backend/internal/usecase/support"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	if cfg.SeedData {
		if err := db.Seed(context.Background(), gdb); err != nil {
			log.Fatal(err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	users := mysql.NewUserRepository(gdb)
	policies := mysql.NewPolicyRepository(gdb)
	userPolicies := mysql.NewUserPolicyRepository(gdb)
	claims := mysql.NewClaimRepository(gdb)
	tickets := mysql.NewTicketRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	authUC := authuc.NewUsecase(users, cfg.JWTSecret, time.Duration(cfg.JWTTTLMins)*time.Minute)
	catalogUC := cataloguc.NewUsecase(policies)
	purchaseUC := purchaseuc.NewUsecase(users, userPolicies, uow)
	renewalUC := renewaluc.NewUsecase(userPolicies, policies, uow)
	claimsUC := claimsuc.NewUsecase(claims, userPolicies)
	supportUC := supportuc.NewUsecase(tickets, userPolicies, claims, uow)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	policyH := httpadp.NewPolicyHandler(catalogUC)
	purchaseH := httpadp.NewPurchaseHandler(purchaseUC)
	renewalH := httpadp.NewRenewalHandler(renewalUC)
	claimH := httpadp.NewClaimHandler(claimsUC)
	ticketH := httpadp.NewTicketHandler(supportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	jwtAuth := mw.JWTAuth(cfg.JWTSecret)
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	// catalog
	e.GET("/policies", policyH.List, jwtAuth)
	e.GET("/policies/:id", policyH.Get, jwtAuth)
	e.POST("/policies/create", policyH.Create, jwtAuth, mw.RequireAdmin)
	e.PUT("/policies/update/:id", policyH.Update, jwtAuth, mw.RequireAdmin)
	e.DELETE("/policies/delete/:id", policyH.Delete, jwtAuth, mw.RequireAdmin)

	// purchased policies
	e.POST("/user/policy/:policy_id/purchase", purchaseH.Purchase, jwtAuth, idemp)
	e.GET("/user/policy", purchaseH.ListPurchased, jwtAuth)
	e.PUT("/user/policy", purchaseH.UpdateStatus, jwtAuth)

	// renewal
	e.GET("/user/policies/renewable", renewalH.ListRenewable, jwtAuth)
	e.POST("/policy/:user_policy_id/renew", renewalH.Renew, jwtAuth, idemp)

	// claims
	e.POST("/claim", claimH.Submit, jwtAuth, idemp)
	e.GET("/user/claim", claimH.ListForUser, jwtAuth)
	e.GET("/claims", claimH.ListAll, jwtAuth, mw.RequireAdmin)
	e.PUT("/claim/:claim_id/status", claimH.Adjudicate, jwtAuth, mw.RequireAdmin)
	e.DELETE("/claim/:claim_id", claimH.Delete, jwtAuth, mw.RequireAdmin)

	// support tickets
	e.POST("/support", ticketH.Create, jwtAuth)
	e.GET("/support/user", ticketH.ListForUser, jwtAuth)
	e.GET("/support", ticketH.ListAll, jwtAuth, mw.RequireAdmin)
	e.GET("/support/:ticket_id", ticketH.Get, jwtAuth, mw.RequireAdmin)
	e.PUT("/support/:ticket_id", ticketH.Update, jwtAuth, mw.RequireAdmin)
	e.DELETE("/support/:ticket_id", ticketH.Delete, jwtAuth, mw.RequireAdmin)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
