package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

const (
	DefaultJobPageLimit = 20
	MaxJobPageLimit     = 100
)

type JobListParams struct {
	Page  int
	Limit int
}

type JobPage struct {
	Jobs       []job.Job
	TotalCount int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobPage, error)
	GetJob(ctx context.Context, id int64) (job.Job, error)
}

// JobCatalog is the full job set matching ranks against.
type JobCatalog interface {
	Catalog(ctx context.Context) ([]job.Job, error)
}

type JobList struct {
	jobs   job.Repository
	cache  Cache
	logger *slog.Logger
}

func NewJobListUsecase(jobs job.Repository, cache Cache, logger *slog.Logger) *JobList {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobList{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobPage, error) {
	page := params.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return JobPage{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	limit := params.Limit
	if limit == 0 {
		limit = DefaultJobPageLimit
	}
	if limit < 1 || limit > MaxJobPageLimit {
		return JobPage{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxJobPageLimit)
	}

	key := fmt.Sprintf("%s%d:%d", jobListKeyPrefix, page, limit)
	if u.cache != nil {
		var cached JobPage
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logger.Debug("jobs cache hit", "key", key)
			return cached, nil
		}
	}

	items, err := u.jobs.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return JobPage{}, ErrInternal
	}
	total, err := u.jobs.Count(ctx)
	if err != nil {
		return JobPage{}, ErrInternal
	}

	out := JobPage{Jobs: items, TotalCount: total}
	if out.Jobs == nil {
		out.Jobs = []job.Job{}
	}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err == nil {
			u.logger.Debug("jobs cache set", "key", key)
		}
	}
	return out, nil
}

func (u *JobList) GetJob(ctx context.Context, id int64) (job.Job, error) {
	if id <= 0 {
		return job.Job{}, fmt.Errorf("%w: job id must be positive", ErrInvalidInput)
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// Catalog serves the cached job set, loading it from the store on a miss.
func (u *JobList) Catalog(ctx context.Context) ([]job.Job, error) {
	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, jobCatalogKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	all, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, jobCatalogKey, all, 0)
	}
	return all, nil
}

// RefreshCatalog reloads the catalog into the cache and drops cached pages.
// It returns false when another instance holds the refresh lock.
func (u *JobList) RefreshCatalog(ctx context.Context) (bool, error) {
	if u.cache == nil {
		return false, nil
	}

	token := uuid.NewString()
	ok, err := u.cache.SetIfNotExists(ctx, jobCatalogLockKey, token, 30*time.Second)
	if err != nil || !ok {
		return false, err
	}
	defer func() { _, _ = u.cache.DeleteIfValue(ctx, jobCatalogLockKey, token) }()

	all, err := u.jobs.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if err := u.cache.SetJSON(ctx, jobCatalogKey, all, 0); err != nil {
		return false, err
	}
	if err := u.cache.DeletePrefix(ctx, jobListKeyPrefix); err != nil {
		u.logger.Warn("jobs cache prune failed", "error", err)
	}

	u.logger.Info("job catalog refreshed", "jobs", len(all))
	return true, nil
}
