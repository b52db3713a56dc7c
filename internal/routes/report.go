package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
)

func runReportRouter(api *echo.Group, reportCtrl *controllers.ReportController) {
	api.GET("/reports/equipment", reportCtrl.EquipmentUsage)
}
