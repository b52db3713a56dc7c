package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
)

func runEquipmentRouter(
	api *echo.Group,
	equipmentCtrl *controllers.EquipmentController,
	bookingCtrl *controllers.BookingController,
	catalogCtrl *controllers.CatalogController,
) {
	// Статичные пути регистрируются раньше /:id, echo матчит их первыми.
	api.GET("/equipment", equipmentCtrl.GetEquipments)
	api.GET("/equipment/search", equipmentCtrl.SearchEquipments)
	api.GET("/equipment/filters", catalogCtrl.GetFilters)
	api.GET("/equipment/category/:category", equipmentCtrl.FindByCategory)
	api.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)

	api.POST("/equipment/:id/use", equipmentCtrl.UseEquipment)
	api.POST("/equipment/:id/finish", equipmentCtrl.FinishEquipment)
	api.GET("/equipment/:id/available-slots", bookingCtrl.AvailableSlots)
}
