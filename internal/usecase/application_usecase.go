package usecase

import (
	"context"
	"errors"
	"strings"

	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, callerID uuid.UUID, jobID int64, message *string) (engagement.Application, error)
	List(ctx context.Context, callerID uuid.UUID, ownerID *uuid.UUID) ([]engagement.Application, error)
}

type Applications struct {
	applications engagement.ApplicationRepository
	jobs         job.Repository
	events       Publisher
}

func NewApplicationUsecase(applications engagement.ApplicationRepository, jobs job.Repository, events Publisher) *Applications {
	return &Applications{applications: applications, jobs: jobs, events: publisherOrNop(events)}
}

func (u *Applications) Apply(ctx context.Context, callerID uuid.UUID, jobID int64, message *string) (engagement.Application, error) {
	if callerID == uuid.Nil {
		return engagement.Application{}, ErrUnauthorized
	}
	if jobID <= 0 {
		return engagement.Application{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return engagement.Application{}, ErrJobNotFound
		}
		return engagement.Application{}, ErrInternal
	}

	var msg *string
	if message != nil {
		if m := strings.TrimSpace(*message); m != "" {
			msg = &m
		}
	}

	created, err := u.applications.Create(ctx, engagement.Application{
		UserID:  callerID,
		JobID:   &j.ID,
		Message: msg,
	})
	if err != nil {
		switch {
		case errors.Is(err, engagement.ErrAlreadyApplied):
			return engagement.Application{}, ErrAlreadyApplied
		case errors.Is(err, engagement.ErrJobNotFound):
			return engagement.Application{}, ErrJobNotFound
		default:
			return engagement.Application{}, ErrInternal
		}
	}
	created.Job = &job.Summary{ID: j.ID, Title: j.Title, Company: j.Company}

	u.events.Publish(callerID, EventApplicationCreated, created)
	return created, nil
}

// List returns the caller's applications; ownerID, when given, must be the caller.
func (u *Applications) List(ctx context.Context, callerID uuid.UUID, ownerID *uuid.UUID) ([]engagement.Application, error) {
	owner := callerID
	if ownerID != nil {
		owner = *ownerID
	}
	if err := checkOwner(callerID, owner); err != nil {
		return nil, err
	}
	items, err := u.applications.ListByUser(ctx, owner)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []engagement.Application{}
	}
	return items, nil
}
