package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/usecase/dto"
)

// OperatorUseCase - operator listings and the operator page
type OperatorUseCase struct {
	operatorRepo    repository.OperatorRepository
	routeRepo       repository.RouteRepository
	ticketRepo      repository.TicketRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	cacheTTL        time.Duration
	defaultTemplate string
}

func NewOperatorUseCase(
	operatorRepo repository.OperatorRepository,
	routeRepo repository.RouteRepository,
	ticketRepo repository.TicketRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	defaultTemplate string,
) *OperatorUseCase {
	if defaultTemplate == "" {
		defaultTemplate = domain.DefaultOperatorTemplate
	}
	return &OperatorUseCase{
		operatorRepo:    operatorRepo,
		routeRepo:       routeRepo,
		ticketRepo:      ticketRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		cacheTTL:        cacheTTL,
		defaultTemplate: defaultTemplate,
	}
}

// List returns all operators alphabetical by name.
func (uc *OperatorUseCase) List(ctx context.Context) ([]domain.Operator, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyOperatorsList, uc.cacheTTL, uc.operatorRepo.List)
}

// ListFeatured returns featured operators alphabetical by name.
func (uc *OperatorUseCase) ListFeatured(ctx context.Context) ([]domain.Operator, error) {
	return readThrough(ctx, uc.cacheRepo, uc.logger, KeyOperatorsFeatured, uc.cacheTTL, uc.operatorRepo.ListFeatured)
}

// GetDetail loads the operator page by bustimes slug.
func (uc *OperatorUseCase) GetDetail(ctx context.Context, slug string) (*dto.OperatorDetailResponse, error) {
	op, err := uc.operatorRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Debug("Operator lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	routes, err := uc.routeRepo.ListByOperator(ctx, op.ID)
	if err != nil {
		uc.logger.Error("Failed to list operator routes", zap.Int64("operator_id", op.ID), zap.Error(err))
		return nil, err
	}

	tickets, err := uc.ticketRepo.ListByOperator(ctx, op.ID)
	if err != nil {
		uc.logger.Error("Failed to list operator tickets", zap.Int64("operator_id", op.ID), zap.Error(err))
		return nil, err
	}

	return &dto.OperatorDetailResponse{
		Operator: *op,
		Routes:   dto.NewRouteItems(routes),
		Tickets:  tickets,
		Template: op.Template(uc.defaultTemplate),
	}, nil
}
