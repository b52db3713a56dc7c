package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

// FavoriteController обслуживает избранное. Аутентификации в системе нет:
// пользователь берётся из query-параметра userId, без него подставляется
// пользователь по умолчанию.
type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
	defaultUserID   int64
	logger          *zap.Logger
}

func NewFavoriteController(
	favoriteService services.FavoriteServiceInterface,
	defaultUserID int64,
	logger *zap.Logger,
) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
		defaultUserID:   defaultUserID,
		logger:          logger,
	}
}

func (ctrl *FavoriteController) resolveUserID(c echo.Context) (int64, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return ctrl.defaultUserID, nil
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, apperrors.NewValidationError("Invalid user id",
			utils.NewValidationDetails("userId", "numeric"))
	}
	return userID, nil
}

// List — GET /api/favorites.
func (ctrl *FavoriteController) List(c echo.Context) error {
	userID, err := ctrl.resolveUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	list, err := ctrl.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Favorites", http.StatusOK)
}

// Add — POST /api/favorites/:equipmentId.
func (ctrl *FavoriteController) Add(c echo.Context) error {
	userID, err := ctrl.resolveUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.favoriteService.Add(c.Request().Context(), userID, c.Param("equipmentId")); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Added to favorites", http.StatusOK)
}

// Remove — DELETE /api/favorites/:equipmentId.
func (ctrl *FavoriteController) Remove(c echo.Context) error {
	userID, err := ctrl.resolveUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.favoriteService.Remove(c.Request().Context(), userID, c.Param("equipmentId")); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Removed from favorites", http.StatusOK)
}
