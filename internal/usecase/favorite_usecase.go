package usecase

import (
	"context"
	"errors"

	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

type FavoriteUsecase interface {
	List(ctx context.Context, callerID, ownerID uuid.UUID) ([]engagement.Favorite, error)
	Add(ctx context.Context, callerID, ownerID uuid.UUID, jobID int64) (engagement.Favorite, error)
	Remove(ctx context.Context, callerID, ownerID uuid.UUID, jobID int64) error
}

type Favorites struct {
	favorites engagement.FavoriteRepository
	jobs      job.Repository
	events    Publisher
}

func NewFavoriteUsecase(favorites engagement.FavoriteRepository, jobs job.Repository, events Publisher) *Favorites {
	return &Favorites{favorites: favorites, jobs: jobs, events: publisherOrNop(events)}
}

func (u *Favorites) List(ctx context.Context, callerID, ownerID uuid.UUID) ([]engagement.Favorite, error) {
	if err := checkOwner(callerID, ownerID); err != nil {
		return nil, err
	}
	items, err := u.favorites.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []engagement.Favorite{}
	}
	return items, nil
}

// Add is idempotent: favoriting the same job twice returns the existing row.
func (u *Favorites) Add(ctx context.Context, callerID, ownerID uuid.UUID, jobID int64) (engagement.Favorite, error) {
	if err := checkOwner(callerID, ownerID); err != nil {
		return engagement.Favorite{}, err
	}
	if jobID <= 0 {
		return engagement.Favorite{}, ErrJobNotFound
	}
	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return engagement.Favorite{}, ErrInternal
	}
	if !exists {
		return engagement.Favorite{}, ErrJobNotFound
	}

	fav, err := u.favorites.Add(ctx, ownerID, jobID)
	if err != nil {
		if errors.Is(err, engagement.ErrJobNotFound) {
			return engagement.Favorite{}, ErrJobNotFound
		}
		return engagement.Favorite{}, ErrInternal
	}

	u.events.Publish(ownerID, EventFavoriteAdded, fav)
	return fav, nil
}

// Remove succeeds whether or not the favorite existed.
func (u *Favorites) Remove(ctx context.Context, callerID, ownerID uuid.UUID, jobID int64) error {
	if err := checkOwner(callerID, ownerID); err != nil {
		return err
	}
	if jobID <= 0 {
		return ErrInvalidInput
	}
	n, err := u.favorites.Remove(ctx, ownerID, jobID)
	if err != nil {
		return ErrInternal
	}
	if n > 0 {
		u.events.Publish(ownerID, EventFavoriteRemoved, map[string]int64{"jobId": jobID})
	}
	return nil
}

func checkOwner(callerID, ownerID uuid.UUID) error {
	if callerID == uuid.Nil {
		return ErrUnauthorized
	}
	if ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
