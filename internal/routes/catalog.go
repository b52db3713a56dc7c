package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
)

func runCatalogRouter(api *echo.Group, catalogCtrl *controllers.CatalogController) {
	api.POST("/catalog/sync", catalogCtrl.Sync)
}
