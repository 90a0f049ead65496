package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/usecase/dto"
)

// RouteUseCase - route listing and the route page
type RouteUseCase struct {
	routeRepo  repository.RouteRepository
	modeRepo   repository.ModeRepository
	statusRepo repository.RouteStatusRepository
	mapRepo    repository.MapRepository
	ticketRepo repository.TicketRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	modeRepo repository.ModeRepository,
	statusRepo repository.RouteStatusRepository,
	mapRepo repository.MapRepository,
	ticketRepo repository.TicketRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:  routeRepo,
		modeRepo:   modeRepo,
		statusRepo: statusRepo,
		mapRepo:    mapRepo,
		ticketRepo: ticketRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// List returns every route with its vehicle types, plus all modes for filtering.
func (uc *RouteUseCase) List(ctx context.Context) (*dto.RouteListResponse, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyRoutesList, uc.cacheTTL,
		func(ctx context.Context) (*dto.RouteListResponse, error) {
			routes, err := uc.routeRepo.List(ctx)
			if err != nil {
				uc.logger.Error("Failed to list routes", zap.Error(err))
				return nil, err
			}
			modes, err := uc.modeRepo.List(ctx)
			if err != nil {
				uc.logger.Error("Failed to list modes", zap.Error(err))
				return nil, err
			}
			return &dto.RouteListResponse{
				Routes: dto.NewRouteItems(routes),
				Modes:  modes,
			}, nil
		})
}

// GetDetail loads the route page by the route's external uuid.
func (uc *RouteUseCase) GetDetail(ctx context.Context, routeUUID string) (*dto.RouteDetailResponse, error) {
	route, err := uc.routeRepo.GetByUUID(ctx, routeUUID)
	if err != nil {
		uc.logger.Debug("Route lookup failed", zap.String("uuid", routeUUID), zap.Error(err))
		return nil, err
	}

	statuses, err := uc.statusRepo.ListByRoute(ctx, route.ID)
	if err != nil {
		uc.logger.Error("Failed to list route statuses", zap.Int64("route_id", route.ID), zap.Error(err))
		return nil, err
	}

	// Maps are not scoped to routes: every route page lists every map.
	maps, err := uc.mapRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list maps", zap.Error(err))
		return nil, err
	}

	tickets, err := uc.ticketRepo.ListByOperator(ctx, route.OperatorID)
	if err != nil {
		uc.logger.Error("Failed to list operator tickets", zap.Int64("operator_id", route.OperatorID), zap.Error(err))
		return nil, err
	}

	return &dto.RouteDetailResponse{
		Route:         dto.RouteItem{Route: *route, DisplayHex: route.DisplayHex()},
		CurrentStatus: domain.CurrentStatus(statuses),
		Maps:          maps,
		Tickets:       tickets,
	}, nil
}
