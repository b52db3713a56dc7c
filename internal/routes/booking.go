package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
)

func runBookingRouter(api *echo.Group, bookingCtrl *controllers.BookingController) {
	api.POST("/bookings", bookingCtrl.CreateBooking)
	api.GET("/bookings/user/:userId", bookingCtrl.ListByUser)
	api.PATCH("/bookings/:id/cancel", bookingCtrl.CancelBooking)
}
