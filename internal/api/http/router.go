package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Complaints      *handlers.ComplaintsHandler
	Users           *handlers.UsersHandler
	Recommendations *handlers.RecommendationHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/submit-complaint", cfg.Complaints.Submit)
	app.Get("/complaints", cfg.Complaints.List)
	app.Post("/complaints", cfg.Complaints.Create)
	app.Patch("/complaints/:id", cfg.Complaints.Update)
	app.Delete("/complaints/:id", cfg.Complaints.Delete)

	app.Post("/users", cfg.Users.Create)
	// login lookup must precede the :id route
	app.Get("/users/login/:login", cfg.Users.GetByLogin)
	app.Get("/users/:id", cfg.Users.GetByID)

	app.Post("/recommendation", cfg.Recommendations.Recommend)
}
