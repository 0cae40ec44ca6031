package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shoplens/backend/config"
	"github.com/shoplens/backend/internal/delivery/mcpserver"
	"github.com/shoplens/backend/internal/infrastructure/catalogstore"
	"github.com/shoplens/backend/internal/usecase"
)

const version = "0.1.0"

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout carries the MCP transport; zap writes to stderr by default
	logger := buildLogger(cfg.Server.Environment)
	defer logger.Sync() //nolint:errcheck

	loader := catalogstore.NewLoader(cfg.Data.CatalogPath(), cfg.Data.ReviewsPath(), logger)
	commerce := usecase.NewCommerceService(loader, logger)

	srv := mcpserver.New(commerce, version, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("mcp server exited", zap.Error(err))
	}
}

// buildLogger picks the zap preset for the environment.
func buildLogger(environment string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
