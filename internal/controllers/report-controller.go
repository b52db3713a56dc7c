package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// EquipmentUsage — GET /api/reports/equipment. По умолчанию JSON, с
// format=xlsx отдаётся книга Excel.
func (ctrl *ReportController) EquipmentUsage(c echo.Context) error {
	if c.QueryParam("format") == "xlsx" {
		buf, err := ctrl.reportService.EquipmentUsageXLSX(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="equipment-report.xlsx"`)
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}

	report, err := ctrl.reportService.EquipmentUsage(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, report, "Equipment report", http.StatusOK)
}
