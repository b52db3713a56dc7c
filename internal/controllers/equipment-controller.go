package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	lifecycleService services.LifecycleServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// GetEquipments — GET /api/equipment. Списковый запрос локального
// справочника с фасетами и опциональной пагинацией.
func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	list, total, err := ctrl.equipmentService.GetEquipments(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Equipment list", http.StatusOK, total)
}

// FindEquipment — GET /api/equipment/:id.
func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return utils.ErrorResponse(c,
			apperrors.NewValidationError("Equipment id is required",
				utils.NewValidationDetails("id", "required")),
			ctrl.logger)
	}

	eq, err := ctrl.equipmentService.FindEquipment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, eq, "Equipment found", http.StatusOK)
}

// SearchEquipments — GET /api/equipment/search. Поиск идёт во внешнем
// каталоге; при отказе провайдера отдаётся пустой список.
func (ctrl *EquipmentController) SearchEquipments(c echo.Context) error {
	term := c.QueryParam("term")
	facets := utils.ParseFacetsFromQuery(c.Request().URL.Query())

	list, err := ctrl.equipmentService.SearchEquipments(c.Request().Context(), term, facets)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Search results", http.StatusOK)
}

// FindByCategory — GET /api/equipment/category/:category.
func (ctrl *EquipmentController) FindByCategory(c echo.Context) error {
	category := c.Param("category")

	list, err := ctrl.equipmentService.FindByCategory(c.Request().Context(), category)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Equipment list", http.StatusOK)
}

// CreateEquipment — POST /api/equipment, админский путь.
func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	var d dto.CreateEquipmentDTO
	if err := c.Bind(&d); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewValidationError("Invalid request body", nil), ctrl.logger)
	}
	if err := c.Validate(&d); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	eq, err := ctrl.equipmentService.CreateEquipment(c.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, eq, "Equipment created", http.StatusCreated)
}

// UseEquipment — POST /api/equipment/:id/use.
func (ctrl *EquipmentController) UseEquipment(c echo.Context) error {
	eq, err := ctrl.lifecycleService.Use(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, eq, "Equipment is now in use", http.StatusOK)
}

// FinishEquipment — POST /api/equipment/:id/finish.
func (ctrl *EquipmentController) FinishEquipment(c echo.Context) error {
	eq, err := ctrl.lifecycleService.Finish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, eq, "Equipment released", http.StatusOK)
}

// ValidateDateParam — общая проверка query-параметра date (YYYY-MM-DD).
func ValidateDateParam(date string) error {
	if date == "" {
		return apperrors.NewValidationError("Date is required",
			utils.NewValidationDetails("date", "required"))
	}
	if _, err := time.Parse(entities.BookingDateLayout, date); err != nil {
		return apperrors.NewValidationError("Invalid date format, expected YYYY-MM-DD",
			utils.NewValidationDetails("date", "booking_date"))
	}
	return nil
}
