package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
)

// StatusUseCase - disruption board and sitewide incident banner
type StatusUseCase struct {
	routeRepo    repository.RouteRepository
	statusRepo   repository.RouteStatusRepository
	incidentRepo repository.IncidentRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewStatusUseCase(
	routeRepo repository.RouteRepository,
	statusRepo repository.RouteStatusRepository,
	incidentRepo repository.IncidentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatusUseCase {
	return &StatusUseCase{
		routeRepo:    routeRepo,
		statusRepo:   statusRepo,
		incidentRepo: incidentRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// GetBoard returns the network disruption board, grouped Mode -> Operator -> Route.
func (uc *StatusUseCase) GetBoard(ctx context.Context) (*domain.DisruptionBoard, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyStatusBoard, uc.cacheTTL, uc.buildBoard)
}

func (uc *StatusUseCase) buildBoard(ctx context.Context) (*domain.DisruptionBoard, error) {
	statuses, err := uc.statusRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("Failed to list active statuses", zap.Error(err))
		return nil, err
	}

	disrupted := domain.ActiveDisruptions(statuses)
	seen := make(map[int64]struct{}, len(disrupted))
	ids := make([]int64, 0, len(disrupted))
	for _, s := range disrupted {
		if _, ok := seen[s.RouteID]; ok {
			continue
		}
		seen[s.RouteID] = struct{}{}
		ids = append(ids, s.RouteID)
	}

	routes := []domain.Route{}
	if len(ids) > 0 {
		routes, err = uc.routeRepo.ListByIDs(ctx, ids)
		if err != nil {
			uc.logger.Error("Failed to load disrupted routes", zap.Int("count", len(ids)), zap.Error(err))
			return nil, err
		}
	}

	board := domain.BuildDisruptionBoard(routes, disrupted)
	uc.logger.Debug("Disruption board built",
		zap.Int("routes", board.RouteCount),
		zap.Int("statuses", board.StatusCount))
	return &board, nil
}

// GetIncident returns the current sitewide incident, or nil when none is active.
func (uc *StatusUseCase) GetIncident(ctx context.Context) (*domain.NetworkIncident, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyStatusIncident, uc.cacheTTL,
		func(ctx context.Context) (*domain.NetworkIncident, error) {
			incidents, err := uc.incidentRepo.ListActive(ctx)
			if err != nil {
				uc.logger.Error("Failed to list active incidents", zap.Error(err))
				return nil, err
			}
			return domain.CurrentIncident(incidents), nil
		})
}
