// Package engagement holds the user-to-job relations: favorites and applications.
package engagement

import (
	"context"
	"errors"
	"time"

	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrJobNotFound    = errors.New("job not found")
)

type Favorite struct {
	ID        int64
	UserID    uuid.UUID
	JobID     int64
	Job       *job.Summary
	CreatedAt time.Time
}

type Application struct {
	ID     int64
	UserID uuid.UUID
	// JobID is nil once the referenced job has been deleted.
	JobID     *int64
	Job       *job.Summary
	Message   *string
	CreatedAt time.Time
}

type FavoriteRepository interface {
	// Add inserts the pair if absent and returns the stored row either way.
	Add(ctx context.Context, userID uuid.UUID, jobID int64) (Favorite, error)
	Remove(ctx context.Context, userID uuid.UUID, jobID int64) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)
}
