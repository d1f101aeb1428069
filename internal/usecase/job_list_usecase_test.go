package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-orient/internal/domain/job"
	"career-orient/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs(n int) []job.Job {
	out := make([]job.Job, 0, n)
	base := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		out = append(out, job.Job{
			ID:       int64(i),
			Title:    "Job",
			Company:  "Acme",
			Tags:     []string{"Remote"},
			PostedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestJobListUsecase_ListJobs_InvalidParams(t *testing.T) {
	uc := NewJobListUsecase(&memJobs{}, nil, logger.Discard())
	ctx := context.Background()

	for _, p := range []JobListParams{{Page: -1}, {Limit: -1}, {Limit: MaxJobPageLimit + 1}} {
		_, err := uc.ListJobs(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidInput, "params %+v", p)
	}
}

func TestJobListUsecase_ListJobs_Paging(t *testing.T) {
	repo := &memJobs{items: sampleJobs(25)}
	uc := NewJobListUsecase(repo, nil, logger.Discard())

	first, err := uc.ListJobs(context.Background(), JobListParams{})
	require.NoError(t, err)
	assert.Len(t, first.Jobs, DefaultJobPageLimit)
	assert.Equal(t, 25, first.TotalCount)

	second, err := uc.ListJobs(context.Background(), JobListParams{Page: 2, Limit: 20})
	require.NoError(t, err)
	require.Len(t, second.Jobs, 5)
	assert.Equal(t, int64(21), second.Jobs[0].ID)

	beyond, err := uc.ListJobs(context.Background(), JobListParams{Page: 9, Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Jobs)
	assert.Empty(t, beyond.Jobs)
	assert.Equal(t, 25, beyond.TotalCount)
}

func TestJobListUsecase_ListJobs_UsesCache(t *testing.T) {
	repo := &memJobs{items: sampleJobs(3)}
	cache := newMemCache()
	uc := NewJobListUsecase(repo, cache, logger.Discard())
	ctx := context.Background()

	_, err := uc.ListJobs(ctx, JobListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	got, err := uc.ListJobs(ctx, JobListParams{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	require.Len(t, got.Jobs, 2)
	assert.Equal(t, 3, got.TotalCount)
	assert.True(t, cache.has("jobs:list:1:2"))
}

func TestJobListUsecase_ListJobs_StoreFailure(t *testing.T) {
	uc := NewJobListUsecase(&memJobs{err: errors.New("db down")}, nil, logger.Discard())
	_, err := uc.ListJobs(context.Background(), JobListParams{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestJobListUsecase_GetJob(t *testing.T) {
	uc := NewJobListUsecase(&memJobs{items: sampleJobs(2)}, nil, logger.Discard())
	ctx := context.Background()

	j, err := uc.GetJob(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), j.ID)

	_, err = uc.GetJob(ctx, 99)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.GetJob(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobListUsecase_CatalogAndRefresh(t *testing.T) {
	repo := &memJobs{items: sampleJobs(4)}
	cache := newMemCache()
	uc := NewJobListUsecase(repo, cache, logger.Discard())
	ctx := context.Background()

	all, err := uc.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	_, err = uc.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.allCalls)

	_, err = uc.ListJobs(ctx, JobListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	repo.items = sampleJobs(6)

	refreshed, err := uc.RefreshCatalog(ctx)
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.False(t, cache.has("jobs:list:1:2"))
	assert.False(t, cache.has(jobCatalogLockKey))

	all, err = uc.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestJobListUsecase_RefreshCatalog_LockHeld(t *testing.T) {
	cache := newMemCache()
	_, _ = cache.SetIfNotExists(context.Background(), jobCatalogLockKey, "1", time.Minute)
	repo := &memJobs{items: sampleJobs(1)}
	uc := NewJobListUsecase(repo, cache, logger.Discard())

	refreshed, err := uc.RefreshCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, refreshed)
	assert.Equal(t, 0, repo.allCalls)
	assert.True(t, cache.has(jobCatalogLockKey), "a lock held by another refresher stays in place")
}

func TestJobListUsecase_CatalogWithoutCache(t *testing.T) {
	repo := &memJobs{items: sampleJobs(2)}
	uc := NewJobListUsecase(repo, nil, logger.Discard())

	refreshed, err := uc.RefreshCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, refreshed)

	all, err := uc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
