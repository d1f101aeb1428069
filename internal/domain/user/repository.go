package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type Repository interface {
	// CreateWithProfile persists the user and its profile atomically.
	CreateWithProfile(ctx context.Context, u User, p Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	CreateProfile(ctx context.Context, p Profile) error
	UpdateProfile(ctx context.Context, p Profile) error
}
