package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/utils"
)

type StatusService interface {
	GetBoard(ctx context.Context) (*domain.DisruptionBoard, error)
	GetIncident(ctx context.Context) (*domain.NetworkIncident, error)
}

// StatusHandler serves the disruption board and incident banner
type StatusHandler struct {
	statusUC StatusService
	logger   *zap.Logger
}

func NewStatusHandler(statusUC StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusUC: statusUC,
		logger:   logger,
	}
}

// GetBoard godoc
// @Summary Network status board
// @Description Routes with at least one active status other than good service, grouped by mode, then operator
// @Tags Status
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DisruptionBoard}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/status [get]
func (h *StatusHandler) GetBoard(c *fiber.Ctx) error {
	board, err := h.statusUC.GetBoard(c.Context())
	if err != nil {
		h.logger.Error("Failed to build status board", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, board, &utils.Meta{Total: board.RouteCount})
}

// GetIncident godoc
// @Summary Sitewide incident banner
// @Description The active network incident with the latest start time, or null
// @Tags Status
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.NetworkIncident}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/incident [get]
func (h *StatusHandler) GetIncident(c *fiber.Ctx) error {
	incident, err := h.statusUC.GetIncident(c.Context())
	if err != nil {
		h.logger.Error("Failed to load incident", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, incident, nil)
}
