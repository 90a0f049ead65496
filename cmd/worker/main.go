package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/infrastructure/bustimes"
	"github.com/transit-site/internal/pkg/logger"
	"github.com/transit-site/internal/repository/cache"
	"github.com/transit-site/internal/repository/postgres"
	redisRepo "github.com/transit-site/internal/repository/redis"
	"github.com/transit-site/internal/usecase"
	"github.com/transit-site/internal/worker"
	"github.com/transit-site/internal/worker/importer"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting route import worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("bustimes_url", cfg.Bustimes.BaseURL))

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

	// 5. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	var cacheRepo repository.CacheRepository = cache.NewNoopCache()
	if cfg.Cache.Enabled {
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	// 6. Initialize use cases
	importUC := usecase.NewImportUseCase(
		postgres.NewOperatorRepository(db),
		postgres.NewModeRepository(db),
		postgres.NewRouteRepository(db),
		bustimes.NewClient(cfg.Bustimes, log),
		cacheRepo,
		log,
	)

	// 7. Initialize workers
	importWorker := importer.NewRouteImportWorker(
		streamRepo,
		importUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(importWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
