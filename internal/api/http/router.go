package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Ranges   *handlers.RangesHandler
	Bookings *handlers.BookingsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/time-range", cfg.Ranges.CreateRange)
	api.Get("/time-ranges/stored", cfg.Ranges.ListStored)
	api.Put("/time-range/:id/inactive", cfg.Ranges.DeactivateRange)
	api.Post("/time-range/send-email", cfg.Ranges.SendEmail)

	api.Post("/bookings", cfg.Bookings.Submit)
}
