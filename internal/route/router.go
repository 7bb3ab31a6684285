package router

import (
	"salon-booking-service/internal/module/booking/handler"
	"salon-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowCustomerBookings)
	v1.Get("/bookings/salon", m.ValidateToken, handlerBooking.ShowSalonBookings)
	v1.Get("/bookings/report", m.ValidateToken, handlerBooking.ShowSalonReport)
	v1.Get("/bookings/salon/:salon_id/date/:date", m.ValidateToken, handlerBooking.ShowSalonBookingsByDate)
	v1.Get("/bookings/:booking_id", m.ValidateToken, handlerBooking.GetBooking)
	v1.Put("/bookings/:booking_id/status", m.ValidateToken, handlerBooking.UpdateBookingStatus)

	private := Api.Group("/private")
	private.Put("/bookings/:booking_id/payment", handlerBooking.UpdatePaymentStatus)

	return app

}
