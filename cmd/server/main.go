package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shoplens/backend/config"
	httpDelivery "github.com/shoplens/backend/internal/delivery/http"
	"github.com/shoplens/backend/internal/infrastructure/cache"
	"github.com/shoplens/backend/internal/infrastructure/catalogstore"
	"github.com/shoplens/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := buildLogger(cfg.Server.Environment)
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting shoplens backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	loader := catalogstore.NewLoader(cfg.Data.CatalogPath(), cfg.Data.ReviewsPath(), logger)
	commerce := usecase.NewCommerceService(loader, logger)

	var respCache *cache.ResponseCache
	if cfg.Cache.Enabled {
		respCache = cache.New(cfg.Cache.Size, cfg.Cache.TTL)
		logger.Info("response cache enabled",
			zap.Int("size", cfg.Cache.Size), zap.Duration("ttl", cfg.Cache.TTL))
	}

	metrics := httpDelivery.NewMetrics()
	handler := httpDelivery.NewHandler(commerce, respCache, metrics, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
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
