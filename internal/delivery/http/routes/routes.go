package routes

import (
	"career-orient/internal/delivery/http/handler"
	v1 "career-orient/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// APIPrefix is where the versioned API is mounted.
const APIPrefix = "/api/v1"

// Registry mounts /health at the root and the versioned API under APIPrefix.
type Registry struct {
	health *handler.HealthHandler
	api    v1.Handlers
	auth   fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers, auth fiber.Handler) *Registry {
	return &Registry{health: health, api: api, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	v1.Register(app.Group(APIPrefix), r.api, r.auth)

	// Anything left is rendered through the error envelope.
	app.Use(func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
