package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/validator"
	"github.com/transit-site/internal/usecase/dto"
)

// crudRepository is the shape shared by every admin-editable repository.
type crudRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id int64) error
}

// AdminResource is validated record editing for one entity. Every write
// deletes the cached public views.
type AdminResource[T any, R any] struct {
	name      string
	repo      crudRepository[T]
	apply     func(req *R, v *T) error
	id        func(v *T) *int64
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func newAdminResource[T any, R any](
	name string,
	repo crudRepository[T],
	apply func(req *R, v *T) error,
	id func(v *T) *int64,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *AdminResource[T, R] {
	return &AdminResource[T, R]{
		name:      name,
		repo:      repo,
		apply:     apply,
		id:        id,
		cacheRepo: cacheRepo,
		logger:    logger.With(zap.String("entity", name)),
	}
}

func (a *AdminResource[T, R]) Name() string {
	return a.name
}

func (a *AdminResource[T, R]) List(ctx context.Context) ([]T, error) {
	return a.repo.List(ctx)
}

func (a *AdminResource[T, R]) Get(ctx context.Context, id int64) (*T, error) {
	return a.repo.GetByID(ctx, id)
}

func (a *AdminResource[T, R]) Create(ctx context.Context, req *R) (*T, error) {
	v := new(T)
	if err := a.prepare(req, v); err != nil {
		return nil, err
	}
	if err := a.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	a.logger.Info("Record created", zap.Int64("id", *a.id(v)))
	a.changed(ctx)
	return a.repo.GetByID(ctx, *a.id(v))
}

func (a *AdminResource[T, R]) Update(ctx context.Context, id int64, req *R) (*T, error) {
	v, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.prepare(req, v); err != nil {
		return nil, err
	}
	*a.id(v) = id
	if err := a.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	a.logger.Info("Record updated", zap.Int64("id", id))
	a.changed(ctx)
	return a.repo.GetByID(ctx, id)
}

func (a *AdminResource[T, R]) Delete(ctx context.Context, id int64) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Info("Record deleted", zap.Int64("id", id))
	a.changed(ctx)
	return nil
}

func (a *AdminResource[T, R]) prepare(req *R, v *T) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrValidation.WithDetails(validator.FieldErrors(err))
	}
	return a.apply(req, v)
}

func (a *AdminResource[T, R]) changed(ctx context.Context) {
	invalidate(ctx, a.cacheRepo, a.logger, allCacheKeys...)
}

// AdminRepositories groups the repositories the admin API edits.
type AdminRepositories struct {
	Modes         repository.ModeRepository
	VehicleTypes  repository.VehicleTypeRepository
	Operators     repository.OperatorRepository
	Routes        repository.RouteRepository
	Fares         repository.FareRepository
	Tickets       repository.TicketRepository
	StatusTypes   repository.StatusTypeRepository
	RouteStatuses repository.RouteStatusRepository
	Maps          repository.MapRepository
	Incidents     repository.IncidentRepository
}

// AdminUseCase - record editing, inline display order edits and import enqueueing
type AdminUseCase struct {
	Modes         *AdminResource[domain.Mode, dto.ModeRequest]
	VehicleTypes  *AdminResource[domain.VehicleType, dto.VehicleTypeRequest]
	Operators     *AdminResource[domain.Operator, dto.OperatorRequest]
	Routes        *AdminResource[domain.Route, dto.RouteRequest]
	Fares         *AdminResource[domain.Fare, dto.FareRequest]
	Tickets       *AdminResource[domain.Ticket, dto.TicketRequest]
	StatusTypes   *AdminResource[domain.ServiceStatusType, dto.StatusTypeRequest]
	RouteStatuses *AdminResource[domain.RouteStatus, dto.RouteStatusRequest]
	Maps          *AdminResource[domain.Map, dto.MapRequest]
	Incidents     *AdminResource[domain.NetworkIncident, dto.IncidentRequest]

	routeRepo    repository.RouteRepository
	operatorRepo repository.OperatorRepository
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
}

func NewAdminUseCase(
	repos AdminRepositories,
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		Modes: newAdminResource("mode", crudRepository[domain.Mode](repos.Modes),
			(*dto.ModeRequest).Apply,
			func(v *domain.Mode) *int64 { return &v.ID }, cacheRepo, logger),
		VehicleTypes: newAdminResource("vehicle_type", crudRepository[domain.VehicleType](repos.VehicleTypes),
			(*dto.VehicleTypeRequest).Apply,
			func(v *domain.VehicleType) *int64 { return &v.ID }, cacheRepo, logger),
		Operators: newAdminResource("operator", crudRepository[domain.Operator](repos.Operators),
			(*dto.OperatorRequest).Apply,
			func(v *domain.Operator) *int64 { return &v.ID }, cacheRepo, logger),
		Routes: newAdminResource("route", crudRepository[domain.Route](repos.Routes),
			(*dto.RouteRequest).Apply,
			func(v *domain.Route) *int64 { return &v.ID }, cacheRepo, logger),
		Fares: newAdminResource("fare", crudRepository[domain.Fare](repos.Fares),
			(*dto.FareRequest).Apply,
			func(v *domain.Fare) *int64 { return &v.ID }, cacheRepo, logger),
		Tickets: newAdminResource("ticket", crudRepository[domain.Ticket](repos.Tickets),
			(*dto.TicketRequest).Apply,
			func(v *domain.Ticket) *int64 { return &v.ID }, cacheRepo, logger),
		StatusTypes: newAdminResource("service_status_type", crudRepository[domain.ServiceStatusType](repos.StatusTypes),
			(*dto.StatusTypeRequest).Apply,
			func(v *domain.ServiceStatusType) *int64 { return &v.ID }, cacheRepo, logger),
		RouteStatuses: newAdminResource("route_status", crudRepository[domain.RouteStatus](repos.RouteStatuses),
			(*dto.RouteStatusRequest).Apply,
			func(v *domain.RouteStatus) *int64 { return &v.ID }, cacheRepo, logger),
		Maps: newAdminResource("map", crudRepository[domain.Map](repos.Maps),
			(*dto.MapRequest).Apply,
			func(v *domain.Map) *int64 { return &v.ID }, cacheRepo, logger),
		Incidents: newAdminResource("network_incident", crudRepository[domain.NetworkIncident](repos.Incidents),
			(*dto.IncidentRequest).Apply,
			func(v *domain.NetworkIncident) *int64 { return &v.ID }, cacheRepo, logger),

		routeRepo:    repos.Routes,
		operatorRepo: repos.Operators,
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// Schema returns the static admin field groupings.
func (uc *AdminUseCase) Schema() []domain.AdminEntity {
	return domain.AdminSchema()
}

// SetDisplayOrder is the inline edit of a route's display order.
func (uc *AdminUseCase) SetDisplayOrder(ctx context.Context, routeID int64, req dto.DisplayOrderRequest) (*domain.Route, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithDetails(validator.FieldErrors(err))
	}
	if err := uc.routeRepo.UpdateDisplayOrder(ctx, routeID, *req.DisplayOrder); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cacheRepo, uc.logger, allCacheKeys...)
	return uc.routeRepo.GetByID(ctx, routeID)
}

// EnqueueImport queues a bustimes import for the worker. The operator must exist.
func (uc *AdminUseCase) EnqueueImport(ctx context.Context, req dto.ImportRequest) (*dto.ImportQueuedResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithDetails(validator.FieldErrors(err))
	}
	if _, err := uc.operatorRepo.GetBySlug(ctx, req.OperatorSlug); err != nil {
		return nil, err
	}

	event := domain.ImportRequestEvent{
		RequestID:    uuid.New(),
		OperatorCode: req.OperatorCode,
		OperatorSlug: req.OperatorSlug,
		RequestedAt:  time.Now().UTC(),
	}
	msgID, err := uc.streamRepo.PublishToStream(ctx, domain.StreamRouteImport, event)
	if err != nil {
		uc.logger.Error("Failed to enqueue import",
			zap.String("operator_slug", req.OperatorSlug),
			zap.Error(err))
		return nil, errors.ErrQueueError.WithDetails(map[string]interface{}{
			"stream": domain.StreamRouteImport,
		})
	}

	uc.logger.Info("Import queued",
		zap.String("request_id", event.RequestID.String()),
		zap.String("operator_slug", req.OperatorSlug),
		zap.String("message_id", msgID))

	return &dto.ImportQueuedResponse{
		RequestID: event.RequestID.String(),
		MessageID: msgID,
	}, nil
}
