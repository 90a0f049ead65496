package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/utils"
	"github.com/transit-site/internal/usecase/dto"
)

type CatalogService interface {
	GetHome(ctx context.Context) (*dto.HomeResponse, error)
	GetFares(ctx context.Context) (*dto.FaresResponse, error)
	ListMaps(ctx context.Context) ([]domain.Map, error)
	ResolveMap(ctx context.Context, slug string) (string, error)
}

// CatalogHandler serves the home, fares and maps pages
type CatalogHandler struct {
	catalogUC CatalogService
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// Home godoc
// @Summary Home page
// @Description Featured operators and the incident banner
// @Tags Site
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HomeResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/home [get]
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	home, err := h.catalogUC.GetHome(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, home, nil)
}

// Fares godoc
// @Summary Fares page
// @Description Operators alphabetical with their tickets, and fare content grouped by mode
// @Tags Site
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FaresResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/fares [get]
func (h *CatalogHandler) Fares(c *fiber.Ctx) error {
	fares, err := h.catalogUC.GetFares(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fares, &utils.Meta{Total: len(fares.Operators)})
}

// Maps godoc
// @Summary List maps
// @Tags Site
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Map}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/maps [get]
func (h *CatalogHandler) Maps(c *fiber.Ctx) error {
	maps, err := h.catalogUC.ListMaps(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, maps)
}

// MapRedirect godoc
// @Summary Open a map
// @Description Redirects to the map's stored path
// @Tags Site
// @Param slug path string true "Map slug"
// @Success 302
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/{slug} [get]
func (h *CatalogHandler) MapRedirect(c *fiber.Ctx) error {
	path, err := h.catalogUC.ResolveMap(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendRedirect(c, path)
}
