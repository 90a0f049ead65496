package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/infrastructure/bustimes"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/logger"
	"github.com/transit-site/internal/repository/cache"
	"github.com/transit-site/internal/repository/postgres"
	"github.com/transit-site/internal/usecase"
)

func main() {
	operatorCode := flag.String("operator-code", "", "bustimes operator code, e.g. ANWE")
	operatorSlug := flag.String("operator-slug", "", "local operator bustimes slug")
	flag.Parse()

	if *operatorCode == "" || *operatorSlug == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -operator-code CODE -operator-slug SLUG")
		os.Exit(2)
	}

	os.Exit(run(*operatorCode, *operatorSlug))
}

func run(operatorCode, operatorSlug string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.Must(cfg.Log)
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Error("Failed to connect to PostgreSQL", zap.Error(err))
		return 1
	}
	defer db.Close()

	// Cache invalidation is best effort; a missing Redis does not block an import.
	var cacheRepo repository.CacheRepository = cache.NewNoopCache()
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, cached pages will expire on their own", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheRepo = cache.NewCacheRepository(redisClient)
		}
	}

	importUC := usecase.NewImportUseCase(
		postgres.NewOperatorRepository(db),
		postgres.NewModeRepository(db),
		postgres.NewRouteRepository(db),
		bustimes.NewClient(cfg.Bustimes, log),
		cacheRepo,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := importUC.Import(ctx, operatorCode, operatorSlug)
	return report(result, err, operatorCode, operatorSlug)
}

func report(result *domain.ImportResult, err error, operatorCode, operatorSlug string) int {
	switch {
	case errors.Is(err, errors.ErrOperatorNotFound):
		fmt.Printf("ERROR: no operator with slug %q exists, nothing imported\n", operatorSlug)
		return 0
	case err != nil:
		fmt.Fprintf(os.Stderr, "ERROR: import failed: %v\n", err)
		return 1
	case result.Empty():
		fmt.Printf("WARNING: bustimes returned no services for %s, nothing imported\n", operatorCode)
		return 0
	default:
		fmt.Printf("Imported %d services for %s: %d created, %d updated\n",
			result.Fetched, result.OperatorName, result.Created, result.Updated)
		return 0
	}
}
