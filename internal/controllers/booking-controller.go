package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	logger         *zap.Logger
}

func NewBookingController(bookingService services.BookingServiceInterface, logger *zap.Logger) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		logger:         logger,
	}
}

// CreateBooking — POST /api/bookings.
func (ctrl *BookingController) CreateBooking(c echo.Context) error {
	var d dto.CreateBookingDTO
	if err := c.Bind(&d); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewValidationError("Invalid request body", nil), ctrl.logger)
	}
	if err := c.Validate(&d); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	booking, err := ctrl.bookingService.CreateBooking(c.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, booking, "Booking created", http.StatusCreated)
}

// CancelBooking — PATCH /api/bookings/:id/cancel.
func (ctrl *BookingController) CancelBooking(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c,
			apperrors.NewValidationError("Invalid booking id",
				utils.NewValidationDetails("id", "numeric")),
			ctrl.logger)
	}

	booking, err := ctrl.bookingService.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, booking, "Booking cancelled", http.StatusOK)
}

// ListByUser — GET /api/bookings/user/:userId.
func (ctrl *BookingController) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return utils.ErrorResponse(c,
			apperrors.NewValidationError("Invalid user id",
				utils.NewValidationDetails("userId", "numeric")),
			ctrl.logger)
	}

	list, err := ctrl.bookingService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Booking list", http.StatusOK)
}

// AvailableSlots — GET /api/equipment/:id/available-slots?date=YYYY-MM-DD.
func (ctrl *BookingController) AvailableSlots(c echo.Context) error {
	date := c.QueryParam("date")
	if err := ValidateDateParam(date); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	slots, err := ctrl.bookingService.AvailableSlots(c.Request().Context(), c.Param("id"), date)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.AvailableSlotsDTO{AvailableSlots: slots}, "Available slots", http.StatusOK)
}
