package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/utils"
	"github.com/transit-site/internal/usecase/dto"
)

type OperatorService interface {
	List(ctx context.Context) ([]domain.Operator, error)
	GetDetail(ctx context.Context, slug string) (*dto.OperatorDetailResponse, error)
}

// OperatorHandler serves operator pages
type OperatorHandler struct {
	operatorUC OperatorService
	logger     *zap.Logger
}

func NewOperatorHandler(operatorUC OperatorService, logger *zap.Logger) *OperatorHandler {
	return &OperatorHandler{
		operatorUC: operatorUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List operators
// @Description All operators, alphabetical by name
// @Tags Operators
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Operator}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/operators [get]
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	ops, err := h.operatorUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, ops)
}

// Get godoc
// @Summary Operator page
// @Description Operator with its routes, tickets by price and the page template
// @Tags Operators
// @Produce json
// @Param slug path string true "Operator bustimes slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.OperatorDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/operators/{slug} [get]
func (h *OperatorHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	detail, err := h.operatorUC.GetDetail(c.Context(), slug)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}
