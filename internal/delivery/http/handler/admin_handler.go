package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/utils"
	"github.com/transit-site/internal/usecase"
	"github.com/transit-site/internal/usecase/dto"
)

// ResourceService is the CRUD surface of one admin entity.
type ResourceService[T any, R any] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, req *R) (*T, error)
	Update(ctx context.Context, id int64, req *R) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type AdminService interface {
	Schema() []domain.AdminEntity
	SetDisplayOrder(ctx context.Context, routeID int64, req dto.DisplayOrderRequest) (*domain.Route, error)
	EnqueueImport(ctx context.Context, req dto.ImportRequest) (*dto.ImportQueuedResponse, error)
}

// AdminHandler serves the admin endpoints that are not plain CRUD
type AdminHandler struct {
	adminUC AdminService
	logger  *zap.Logger
}

func NewAdminHandler(adminUC AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// Schema godoc
// @Summary Admin presentation config
// @Description List columns, filters, search fields and fieldsets for every entity
// @Tags Admin
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.AdminEntity}
// @Failure 401 {object} utils.ErrorResponse
// @Router /admin/api/schema [get]
func (h *AdminHandler) Schema(c *fiber.Ctx) error {
	schema := h.adminUC.Schema()
	return utils.SendSuccess(c, schema, &utils.Meta{Total: len(schema)})
}

// SchemaEntity godoc
// @Summary Admin presentation config for one entity
// @Tags Admin
// @Produce json
// @Security BasicAuth
// @Param entity path string true "Entity path, e.g. routes"
// @Success 200 {object} utils.SuccessResponse{data=domain.AdminEntity}
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/schema/{entity} [get]
func (h *AdminHandler) SchemaEntity(c *fiber.Ctx) error {
	entity, ok := domain.AdminEntityByPath(c.Params("entity"))
	if !ok {
		return utils.SendError(c, errors.ErrRecordNotFound.WithMessage("Unknown admin entity"))
	}
	return utils.SendSuccess(c, entity, nil)
}

// SetDisplayOrder godoc
// @Summary Change a route's display order
// @Tags Admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Route id"
// @Param request body dto.DisplayOrderRequest true "New display order"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/routes/{id}/display-order [patch]
func (h *AdminHandler) SetDisplayOrder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DisplayOrderRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.adminUC.SetDisplayOrder(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, nil)
}

// EnqueueImport godoc
// @Summary Queue a bustimes route import
// @Description Publishes an import request for the worker and returns immediately
// @Tags Admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body dto.ImportRequest true "Operator to import"
// @Success 202 {object} utils.SuccessResponse{data=dto.ImportQueuedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/api/imports [post]
func (h *AdminHandler) EnqueueImport(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	queued, err := h.adminUC.EnqueueImport(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to enqueue import",
			zap.String("operator_slug", req.OperatorSlug),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
	return utils.SendAccepted(c, queued)
}

// Register mounts the schema, display order, import and every entity's CRUD
// endpoints on router.
func (h *AdminHandler) Register(router fiber.Router, uc *usecase.AdminUseCase) {
	router.Get("/schema", h.Schema)
	router.Get("/schema/:entity", h.SchemaEntity)
	router.Patch("/routes/:id/display-order", h.SetDisplayOrder)
	router.Post("/imports", h.EnqueueImport)

	RegisterResource[domain.Mode, dto.ModeRequest](router, "modes", uc.Modes, h.logger)
	RegisterResource[domain.VehicleType, dto.VehicleTypeRequest](router, "vehicle-types", uc.VehicleTypes, h.logger)
	RegisterResource[domain.Operator, dto.OperatorRequest](router, "operators", uc.Operators, h.logger)
	RegisterResource[domain.Route, dto.RouteRequest](router, "routes", uc.Routes, h.logger)
	RegisterResource[domain.Fare, dto.FareRequest](router, "fares", uc.Fares, h.logger)
	RegisterResource[domain.Ticket, dto.TicketRequest](router, "tickets", uc.Tickets, h.logger)
	RegisterResource[domain.ServiceStatusType, dto.StatusTypeRequest](router, "status-types", uc.StatusTypes, h.logger)
	RegisterResource[domain.RouteStatus, dto.RouteStatusRequest](router, "route-statuses", uc.RouteStatuses, h.logger)
	RegisterResource[domain.Map, dto.MapRequest](router, "maps", uc.Maps, h.logger)
	RegisterResource[domain.NetworkIncident, dto.IncidentRequest](router, "incidents", uc.Incidents, h.logger)
}

// RegisterResource mounts list, get, create, update and delete for one
// entity under /<path>.
func RegisterResource[T any, R any](router fiber.Router, path string, svc ResourceService[T, R], logger *zap.Logger) {
	h := &resourceHandler[T, R]{svc: svc, logger: logger}
	group := router.Group("/" + path)
	group.Get("/", h.list)
	group.Post("/", h.create)
	group.Get("/:id", h.get)
	group.Put("/:id", h.update)
	group.Delete("/:id", h.delete)
}

type resourceHandler[T any, R any] struct {
	svc    ResourceService[T, R]
	logger *zap.Logger
}

func (h *resourceHandler[T, R]) list(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, items)
}

func (h *resourceHandler[T, R]) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	item, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

func (h *resourceHandler[T, R]) create(c *fiber.Ctx) error {
	req := new(R)
	if err := parseBody(c, req); err != nil {
		return utils.SendError(c, err)
	}
	item, err := h.svc.Create(c.Context(), req)
	if err != nil {
		h.logger.Warn("Admin create failed", zap.String("entity", h.svc.Name()), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, item)
}

func (h *resourceHandler[T, R]) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	req := new(R)
	if err := parseBody(c, req); err != nil {
		return utils.SendError(c, err)
	}
	item, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		h.logger.Warn("Admin update failed",
			zap.String("entity", h.svc.Name()),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

func (h *resourceHandler[T, R]) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		h.logger.Warn("Admin delete failed",
			zap.String("entity", h.svc.Name()),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
