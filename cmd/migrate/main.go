package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/pkg/logger"
	"github.com/transit-site/internal/repository/postgres"
)

func main() {
	down := flag.Bool("down", false, "revert the latest applied migration instead of migrating up")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *down {
		version, err := db.Rollback(ctx)
		if err != nil {
			log.Error("Rollback failed", zap.Error(err))
			os.Exit(1)
		}
		if version == "" {
			log.Info("No migrations to revert")
			return
		}
		log.Info("Rollback complete", zap.String("version", version))
		return
	}

	if err := db.Bootstrap(ctx); err != nil {
		log.Error("Migration failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Database is up to date")
}
