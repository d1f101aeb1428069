package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"career-orient/internal/database"
)

// Runner executes seeders in slice order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	// Only restricts the run to the named seeders when non-empty. Unknown
	// names are an error.
	Only   []string
	Logger *slog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}

	selected, err := r.selected()
	if err != nil {
		return err
	}

	for _, s := range selected {
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Info("seeder finished", "seeder", s.Name(), "took", time.Since(start))
		}
	}
	return nil
}

func (r Runner) selected() ([]Seeder, error) {
	known := make([]string, 0, len(r.Seeders))
	out := make([]Seeder, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		known = append(known, s.Name())
		if len(r.Only) == 0 || slices.Contains(r.Only, s.Name()) {
			out = append(out, s)
		}
	}

	for _, name := range r.Only {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("unknown seeder %q (have %s)", name, strings.Join(known, ", "))
		}
	}
	return out, nil
}
