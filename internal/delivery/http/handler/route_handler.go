package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-site/internal/pkg/utils"
	"github.com/transit-site/internal/usecase/dto"
)

type RouteService interface {
	List(ctx context.Context) (*dto.RouteListResponse, error)
	GetDetail(ctx context.Context, routeUUID string) (*dto.RouteDetailResponse, error)
}

// RouteHandler serves route pages
type RouteHandler struct {
	routeUC RouteService
	logger  *zap.Logger
}

func NewRouteHandler(routeUC RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List routes
// @Description All routes by mode, display order and service, plus all modes for filtering
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	resp, err := h.routeUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list routes", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Routes)})
}

// Get godoc
// @Summary Route page
// @Description Route with its current status, all maps and the operator's tickets
// @Tags Routes
// @Produce json
// @Param uuid path string true "Route uuid"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/{uuid} [get]
func (h *RouteHandler) Get(c *fiber.Ctx) error {
	detail, err := h.routeUC.GetDetail(c.Context(), c.Params("uuid"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}
