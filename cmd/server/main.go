package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-orient/internal/app"
	"career-orient/internal/config"
	"career-orient/internal/pkg/logger"
)

const (
	bootTimeout     = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("", "info").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) (err error) {
	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), bootTimeout)
	srv, cleanup, err := app.Bootstrap(bootCtx, cfg, log)
	cancelBoot()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cleanup())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr, "env", cfg.App.Environment)
		listenErr <- srv.Fiber.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Fiber.ShutdownWithContext(shutdownCtx)
}
