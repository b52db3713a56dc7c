package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Sync — POST /api/catalog/sync, ручной прогон синхронизации.
func (ctrl *CatalogController) Sync(c echo.Context) error {
	result, err := ctrl.catalogService.Sync(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Catalog synchronized", http.StatusOK)
}

// GetFilters — GET /api/equipment/filters, фасеты внешнего каталога.
func (ctrl *CatalogController) GetFilters(c echo.Context) error {
	filters, err := ctrl.catalogService.GetFilters(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, filters, "Catalog filters", http.StatusOK)
}
