package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
)

func runFavoriteRouter(api *echo.Group, favoriteCtrl *controllers.FavoriteController) {
	api.GET("/favorites", favoriteCtrl.List)
	api.POST("/favorites/:equipmentId", favoriteCtrl.Add)
	api.DELETE("/favorites/:equipmentId", favoriteCtrl.Remove)
}
