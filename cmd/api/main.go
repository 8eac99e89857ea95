package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/config"
	_ "github.com/Hemasri-atike/Ihire-sub000/docs" // Important for Swagger
	v1 "github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/v1"
	"github.com/Hemasri-atike/Ihire-sub000/internal/repository/postgres"
	"github.com/Hemasri-atike/Ihire-sub000/internal/usecase"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/auth"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/database"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/email"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/logger"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           iHire Invite Service API
// @version         1.0
// @description     Company invite lifecycle for the iHire job portal.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting invite service", "port", cfg.Port)

	// 3. Setup Database
	if err := database.ApplyMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	inviteRepo := postgres.NewInviteRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - invite issuance will fail")
	}

	// 7. Setup UseCases
	validate := validator.New()
	inviteUC := usecase.NewInviteUsecase(inviteRepo, companyRepo, emailService, validate, cfg)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	employerUC := usecase.NewEmployerUsecase(employerRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.JWKSUrl)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InviteUC:     inviteUC,
		CompanyUC:    companyUC,
		EmployerUC:   employerUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
