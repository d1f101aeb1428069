// Package scheduler runs the periodic job catalog warm-up.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
)

type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context) (bool, error)
}

// Scheduler wraps robfig/cron. An empty spec disables it.
type Scheduler struct {
	cron      *cron.Cron
	refresher CatalogRefresher
	spec      string
	logger    *slog.Logger

	mu      sync.Mutex
	started bool
}

func New(refresher CatalogRefresher, spec string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		refresher: refresher,
		spec:      strings.TrimSpace(spec),
		logger:    logger,
	}
}

// Start registers the warm-up job, starts the cron loop and triggers one
// refresh immediately so the cache is populated before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" || s.refresher == nil {
		s.logger.Info("catalog refresh disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, func() { s.refresh(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec)

	go s.refresh(ctx)
	return nil
}

// Stop waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()
	if !started {
		return
	}

	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ok, err := s.refresher.RefreshCatalog(ctx)
	if err != nil {
		s.logger.Warn("catalog refresh failed", "error", err)
		return
	}
	if !ok {
		s.logger.Debug("catalog refresh skipped")
	}
}
