package v1

import (
	"career-orient/internal/delivery/http/handler"
	"career-orient/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	Quiz         *handler.QuizHandler
	Favorites    *handler.FavoriteHandler
	Applications *handler.ApplicationHandler
	Profile      *handler.ProfileHandler
	Events       *ws.Handler
}

// Register mounts every v1 endpoint on r. Protected routes take auth
// individually so public routes sharing a prefix stay public.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r)
	}
	if h.Quiz != nil {
		h.Quiz.RegisterRoutes(r, auth)
	}
	if h.Favorites != nil {
		h.Favorites.RegisterRoutes(r, auth)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(r, auth)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r, auth)
	}
	if h.Events != nil {
		h.Events.RegisterRoutes(r)
	}
}
