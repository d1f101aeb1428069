package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"career-orient/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) RefreshCatalog(context.Context) (bool, error) {
	r.calls.Add(1)
	return r.err == nil, r.err
}

func TestScheduler_RunsOnceAtStart(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, "@every 1h", logger.Discard())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	require.Eventually(t, func() bool { return r.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(&countingRefresher{}, "every tuesday-ish", logger.Discard())
	assert.Error(t, s.Start(context.Background()))
	s.Stop()
}

func TestScheduler_Disabled(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, "  ", logger.Discard())

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, r.calls.Load())
}

func TestScheduler_RefreshErrorIsLogged(t *testing.T) {
	r := &countingRefresher{err: errors.New("redis down")}
	s := New(r, "@every 1h", logger.Discard())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
	require.Eventually(t, func() bool { return r.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CancelledContextSkipsRefresh(t *testing.T) {
	r := &countingRefresher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(r, "@every 1h", logger.Discard())
	require.NoError(t, s.Start(ctx))
	s.Stop()
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, r.calls.Load())
}
