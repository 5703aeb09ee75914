package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "mesto-backend/cmd/api"
	authdomain "mesto-backend/internal/auth/domain"
	authRepo "mesto-backend/internal/auth/repository"
	"mesto-backend/internal/auth/token"
	authUsecase "mesto-backend/internal/auth/usecase"
	"mesto-backend/pkg/config"
	"mesto-backend/pkg/database"
	"mesto-backend/pkg/logger"
	"mesto-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logr := logger.New(cfg.LogLevel, cfg.IsProduction(), os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.NewConnection(cfg.DatabaseURL, logr)
	if err != nil {
		logr.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		logr.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize repositories and use cases (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	authUsecaseInstance, err := authUsecase.NewAuthUsecase(userRepo, tokens, logr)
	if err != nil {
		logr.WithError(err).Fatal("failed to initialize auth usecase")
	}

	handler := api.NewHandler(authUsecaseInstance, cfg, logr, metrics.NewMetrics())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logr.WithField("env", cfg.Environment).Infof("Server starting on port %s", cfg.Port)
	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		logr.WithError(err).Fatal("server stopped with error")
	}
	logr.Info("server stopped")
}
