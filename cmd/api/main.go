package main

// @title Transit Site API
// @version 1.0
// @description Operators, routes, live service status, fares and maps for a regional transit information site.
// @description The admin API edits every record and queues bustimes route imports.

// @BasePath /
// @schemes http https

// @securityDefinitions.basic BasicAuth

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/transit-site/docs"
	"github.com/transit-site/internal/config"
	httpDelivery "github.com/transit-site/internal/delivery/http"
	"github.com/transit-site/internal/delivery/http/handler"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/logger"
	"github.com/transit-site/internal/pkg/validator"
	"github.com/transit-site/internal/repository/cache"
	"github.com/transit-site/internal/repository/postgres"
	redisRepo "github.com/transit-site/internal/repository/redis"
	"github.com/transit-site/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := validator.SetPhoneCountryCode(cfg.Site.PhoneCountryCode); err != nil {
		log.Fatal("Invalid phone country code", zap.Error(err))
	}

	log.Info("Starting Transit Site API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.Bool("production", cfg.IsProduction()),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
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

	// 4. Connect to Redis (cache and import stream)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks and schema
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := db.Bootstrap(ctx); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	modeRepo := postgres.NewModeRepository(db)
	vehicleTypeRepo := postgres.NewVehicleTypeRepository(db)
	operatorRepo := postgres.NewOperatorRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	fareRepo := postgres.NewFareRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	statusTypeRepo := postgres.NewStatusTypeRepository(db)
	routeStatusRepo := postgres.NewRouteStatusRepository(db)
	mapRepo := postgres.NewMapRepository(db)
	incidentRepo := postgres.NewIncidentRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	var cacheRepo repository.CacheRepository = cache.NewNoopCache()
	if cfg.Cache.Enabled {
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	statusUC := usecase.NewStatusUseCase(
		routeRepo,
		routeStatusRepo,
		incidentRepo,
		cacheRepo,
		log,
		cfg.Cache.StatusTTL,
	)

	operatorUC := usecase.NewOperatorUseCase(
		operatorRepo,
		routeRepo,
		ticketRepo,
		cacheRepo,
		log,
		cfg.Cache.ListingTTL,
		cfg.Site.DefaultOperatorTemplate,
	)

	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		modeRepo,
		routeStatusRepo,
		mapRepo,
		ticketRepo,
		cacheRepo,
		log,
		cfg.Cache.ListingTTL,
	)

	catalogUC := usecase.NewCatalogUseCase(
		operatorRepo,
		ticketRepo,
		fareRepo,
		mapRepo,
		statusUC,
		operatorUC,
		cacheRepo,
		log,
		cfg.Cache.ListingTTL,
	)

	adminUC := usecase.NewAdminUseCase(usecase.AdminRepositories{
		Modes:         modeRepo,
		VehicleTypes:  vehicleTypeRepo,
		Operators:     operatorRepo,
		Routes:        routeRepo,
		Fares:         fareRepo,
		Tickets:       ticketRepo,
		StatusTypes:   statusTypeRepo,
		RouteStatuses: routeStatusRepo,
		Maps:          mapRepo,
		Incidents:     incidentRepo,
	}, streamRepo, cacheRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Status:   handler.NewStatusHandler(statusUC, log),
		Operator: handler.NewOperatorHandler(operatorUC, log),
		Route:    handler.NewRouteHandler(routeUC, log),
		Catalog:  handler.NewCatalogHandler(catalogUC, log),
		Admin:    handler.NewAdminHandler(adminUC, log),
		AdminUC:  adminUC,
	})

	if cfg.Admin.Password == "" {
		log.Warn("ADMIN_PASSWORD is empty, the admin API rejects every request")
	}

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
