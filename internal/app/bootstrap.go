package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"career-orient/internal/config"
	"career-orient/internal/database/migration"
	"career-orient/internal/delivery/http/handler"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/delivery/http/routes"
	v1 "career-orient/internal/delivery/http/routes/v1"
	"career-orient/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ErrorHandler: middleware.NewErrorMiddleware(c.Logger).Handler(),
	})

	registerGlobalMiddleware(f, c.Logger, c.Config.App.AllowedOrigins)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, applies migrations and starts the
// background workers. The returned cleanup stops them in reverse order.
func Bootstrap(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	if err := (migration.Runner{Logger: logger}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	go c.Hub.Run(workerCtx)

	if err := c.Scheduler.Start(workerCtx); err != nil {
		stopWorkers()
		_ = c.Close()
		return nil, nil, fmt.Errorf("start scheduler: %w", err)
	}

	cleanup := func() error {
		c.Scheduler.Stop()
		stopWorkers()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *slog.Logger, origins []string) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	corsCfg := cors.Config{}
	if len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	}
	app.Use(cors.New(corsCfg))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}

	authMw := middleware.NewAuthMiddleware(c.Tokens)
	handlers := v1.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth),
		Jobs:         handler.NewJobsHandler(c.Jobs),
		Quiz:         handler.NewQuizHandler(c.Quizzes),
		Favorites:    handler.NewFavoriteHandler(c.Favorites),
		Applications: handler.NewApplicationHandler(c.Applications),
		Profile:      handler.NewProfileHandler(c.Users),
		Events:       ws.NewHandler(c.Hub, c.Tokens, c.Logger, ws.WithAllowedOrigins(c.Config.App.AllowedOrigins...)),
	}

	routes.NewRegistry(handler.NewHealthHandler(c.DB, cachePinger), handlers, authMw.Middleware()).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
