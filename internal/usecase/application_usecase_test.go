package usecase

import (
	"context"
	"testing"

	"career-orient/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplications_ApplyAndList(t *testing.T) {
	apps := &memApplications{}
	events := &recordingPublisher{}
	jobs := &memJobs{items: []job.Job{{ID: 3, Title: "Data Analyst", Company: "Acme"}}}
	uc := NewApplicationUsecase(apps, jobs, events)
	ctx := context.Background()
	me := uuid.New()

	msg := "  I'd love to join  "
	created, err := uc.Apply(ctx, me, 3, &msg)
	require.NoError(t, err)
	require.NotNil(t, created.Job)
	assert.Equal(t, "Acme", created.Job.Company)
	require.NotNil(t, created.Message)
	assert.Equal(t, "I'd love to join", *created.Message)

	require.Len(t, events.events, 1)
	assert.Equal(t, EventApplicationCreated, events.events[0].Type)

	items, err := uc.List(ctx, me, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = uc.List(ctx, me, &me)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestApplications_Rejections(t *testing.T) {
	apps := &memApplications{}
	jobs := &memJobs{items: []job.Job{{ID: 3, Title: "Data Analyst", Company: "Acme"}}}
	uc := NewApplicationUsecase(apps, jobs, nil)
	ctx := context.Background()
	me, other := uuid.New(), uuid.New()

	_, err := uc.Apply(ctx, me, 3, nil)
	require.NoError(t, err)

	_, err = uc.Apply(ctx, me, 3, nil)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	_, err = uc.Apply(ctx, me, 99, nil)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.List(ctx, me, &other)
	assert.ErrorIs(t, err, ErrForbidden)

	blank := "   "
	created, err := uc.Apply(ctx, other, 3, &blank)
	require.NoError(t, err)
	assert.Nil(t, created.Message)
}
