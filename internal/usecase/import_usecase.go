package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/metrics"
)

// ImportUseCase pulls an operator's services from bustimes.org and upserts
// them as routes keyed by bustimes id.
type ImportUseCase struct {
	operatorRepo repository.OperatorRepository
	modeRepo     repository.ModeRepository
	routeRepo    repository.RouteRepository
	bustimes     repository.BustimesRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
}

func NewImportUseCase(
	operatorRepo repository.OperatorRepository,
	modeRepo repository.ModeRepository,
	routeRepo repository.RouteRepository,
	bustimes repository.BustimesRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		operatorRepo: operatorRepo,
		modeRepo:     modeRepo,
		routeRepo:    routeRepo,
		bustimes:     bustimes,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// Import runs one import. An unknown slug returns ErrOperatorNotFound with no
// writes. An empty result set is not an error and writes nothing. A failed
// upsert aborts the run; rows already upserted stay committed.
func (uc *ImportUseCase) Import(ctx context.Context, operatorCode, operatorSlug string) (*domain.ImportResult, error) {
	log := uc.logger.With(
		zap.String("operator_code", operatorCode),
		zap.String("operator_slug", operatorSlug))

	result := &domain.ImportResult{OperatorSlug: operatorSlug}

	op, err := uc.operatorRepo.GetBySlug(ctx, operatorSlug)
	if err != nil {
		log.Error("Operator not found for import", zap.Error(err))
		metrics.RecordImport(operatorSlug, outcomeFor(err), 0, 0)
		return nil, err
	}
	result.OperatorName = op.Name

	services, err := uc.bustimes.FetchServices(ctx, operatorCode)
	if err != nil {
		log.Error("Failed to fetch bustimes services", zap.Error(err))
		metrics.RecordImport(operatorSlug, metrics.OutcomeError, 0, 0)
		return nil, err
	}
	result.Fetched = len(services)

	if result.Empty() {
		log.Warn("No routes returned from bustimes")
		metrics.RecordImport(operatorSlug, metrics.OutcomeEmpty, 0, 0)
		return result, nil
	}

	mode, err := uc.modeRepo.Ensure(ctx, domain.BusModeName, domain.BusModeSlug)
	if err != nil {
		log.Error("Failed to ensure bus mode", zap.Error(err))
		metrics.RecordImport(operatorSlug, metrics.OutcomeError, 0, 0)
		return nil, err
	}

	for _, svc := range services {
		created, err := uc.routeRepo.Upsert(ctx, domain.NewRouteImport(svc, op.ID, mode.ID))
		if err != nil {
			log.Error("Failed to upsert route",
				zap.Int64("bustimes_id", svc.ID),
				zap.String("line_name", svc.LineName),
				zap.Int("created", result.Created),
				zap.Int("updated", result.Updated),
				zap.Error(err))
			metrics.RecordImport(operatorSlug, metrics.OutcomeError, result.Created, result.Updated)
			uc.invalidate(ctx, result)
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	metrics.RecordImport(operatorSlug, metrics.OutcomeSuccess, result.Created, result.Updated)
	uc.invalidate(ctx, result)

	log.Info("Routes imported",
		zap.String("operator", op.Name),
		zap.Int("fetched", result.Fetched),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))

	return result, nil
}

func (uc *ImportUseCase) invalidate(ctx context.Context, result *domain.ImportResult) {
	if result.Created+result.Updated == 0 {
		return
	}
	invalidate(ctx, uc.cacheRepo, uc.logger, allCacheKeys...)
}

func outcomeFor(err error) string {
	if errors.Is(err, errors.ErrOperatorNotFound) {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
