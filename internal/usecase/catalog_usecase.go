package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/usecase/dto"
)

// CatalogUseCase - fares, maps and the home page
type CatalogUseCase struct {
	operatorRepo repository.OperatorRepository
	ticketRepo   repository.TicketRepository
	fareRepo     repository.FareRepository
	mapRepo      repository.MapRepository
	status       *StatusUseCase
	operators    *OperatorUseCase
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewCatalogUseCase(
	operatorRepo repository.OperatorRepository,
	ticketRepo repository.TicketRepository,
	fareRepo repository.FareRepository,
	mapRepo repository.MapRepository,
	status *StatusUseCase,
	operators *OperatorUseCase,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CatalogUseCase {
	return &CatalogUseCase{
		operatorRepo: operatorRepo,
		ticketRepo:   ticketRepo,
		fareRepo:     fareRepo,
		mapRepo:      mapRepo,
		status:       status,
		operators:    operators,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// GetHome returns featured operators and the current incident banner.
func (uc *CatalogUseCase) GetHome(ctx context.Context) (*dto.HomeResponse, error) {
	featured, err := uc.operators.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	incident, err := uc.status.GetIncident(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HomeResponse{
		FeaturedOperators: featured,
		Incident:          incident,
	}, nil
}

// GetFares returns every operator (alphabetical) with its tickets, price
// ascending, and fare content grouped by mode.
func (uc *CatalogUseCase) GetFares(ctx context.Context) (*dto.FaresResponse, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyFaresList, uc.cacheTTL, uc.buildFares)
}

func (uc *CatalogUseCase) buildFares(ctx context.Context) (*dto.FaresResponse, error) {
	operators, err := uc.operatorRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list operators", zap.Error(err))
		return nil, err
	}
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tickets", zap.Error(err))
		return nil, err
	}
	fares, err := uc.fareRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list fares", zap.Error(err))
		return nil, err
	}

	return &dto.FaresResponse{
		Operators: groupTickets(operators, tickets),
		Modes:     groupFares(fares),
	}, nil
}

// groupTickets keeps operator order and the tickets' own order within each operator.
func groupTickets(operators []domain.Operator, tickets []domain.Ticket) []dto.OperatorFares {
	byOperator := make(map[int64][]domain.Ticket)
	for _, t := range tickets {
		byOperator[t.OperatorID] = append(byOperator[t.OperatorID], t)
	}

	out := make([]dto.OperatorFares, 0, len(operators))
	for i := range operators {
		ts := byOperator[operators[i].ID]
		if ts == nil {
			ts = []domain.Ticket{}
		}
		out = append(out, dto.OperatorFares{Operator: operators[i].Ref(), Tickets: ts})
	}
	return out
}

// groupFares expects fares ordered by mode name.
func groupFares(fares []domain.Fare) []dto.ModeFares {
	out := make([]dto.ModeFares, 0)
	for _, f := range fares {
		if n := len(out); n == 0 || out[n-1].Mode.ID != f.Mode.ID {
			out = append(out, dto.ModeFares{Mode: f.Mode})
		}
		last := &out[len(out)-1]
		last.Fares = append(last.Fares, f)
	}
	return out
}

// ListMaps returns all maps ordered by title.
func (uc *CatalogUseCase) ListMaps(ctx context.Context) ([]domain.Map, error) {
	maps, err := uc.mapRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list maps", zap.Error(err))
		return nil, err
	}
	return maps, nil
}

// ResolveMap returns the stored path of the map with the given slug, unmodified.
func (uc *CatalogUseCase) ResolveMap(ctx context.Context, slug string) (string, error) {
	m, err := uc.mapRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Debug("Map lookup failed", zap.String("slug", slug), zap.Error(err))
		return "", err
	}
	return m.Path, nil
}
