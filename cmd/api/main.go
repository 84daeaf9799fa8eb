package main

// @title AccessNav Service API
// @version 1.0.0
// @description Backend for accessibility-aware navigation. Plans routes annotated with community-reported hazards, manages hazard reports with trust scoring and community validation, and serves area alerts and saved routes.

// @contact.name API Support
// @contact.email support@accessnav-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/accessnav-service/docs"
	"github.com/accessnav-service/internal/config"
	httpDelivery "github.com/accessnav-service/internal/delivery/http"
	"github.com/accessnav-service/internal/delivery/http/handler"
	"github.com/accessnav-service/internal/infrastructure/locationiq"
	"github.com/accessnav-service/internal/pkg/logger"
	"github.com/accessnav-service/internal/repository/cache"
	"github.com/accessnav-service/internal/repository/postgres"
	redisRepo "github.com/accessnav-service/internal/repository/redis"
	"github.com/accessnav-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting AccessNav Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	reportRepo := postgres.NewReportRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	userRepo := postgres.NewUserRepository(db)
	savedRouteRepo := postgres.NewSavedRouteRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	directionsRepo := locationiq.NewClient(&cfg.Directions, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	synthetic := usecase.NewSimulatedHazardSource(cfg.Hazards.SyntheticSeed)

	routeUC := usecase.NewRouteUseCase(
		directionsRepo,
		reportRepo,
		alertRepo,
		synthetic,
		log,
		&cfg.Hazards,
	)

	reportUC := usecase.NewReportUseCase(
		reportRepo,
		userRepo,
		streamRepo,
		log,
	)

	alertUC := usecase.NewAlertUseCase(
		alertRepo,
		synthetic,
		log,
	)

	savedRouteUC := usecase.NewSavedRouteUseCase(
		savedRouteRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	alertHandler := handler.NewAlertHandler(alertUC, log)
	savedRouteHandler := handler.NewSavedRouteHandler(savedRouteUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		reportHandler,
		alertHandler,
		savedRouteHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
