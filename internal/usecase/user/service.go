package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-orient/internal/domain/analytics"
	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("user not found")
	ErrProfileExists  = errors.New("profile already exists")
	ErrProfileMissing = errors.New("profile not found")
	ErrInternal       = errors.New("internal error")
)

// Me is the authenticated user's view of their account.
type Me struct {
	User                user.User
	Profile             *user.Profile
	ApplicationsSummary analytics.Summary
}

type CreateProfileInput struct {
	FirstName string
	LastName  string
	Settings  *user.Settings
}

// UpdateProfileInput leaves nil fields untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Settings  *user.Settings
}

type Service struct {
	users        user.Repository
	applications engagement.ApplicationRepository
	now          func() time.Time
}

func NewService(users user.Repository, applications engagement.ApplicationRepository) *Service {
	return &Service{users: users, applications: applications, now: time.Now}
}

// WithClock replaces the time source used for the monthly summary window.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (Me, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, ErrNotFound
		}
		return Me{}, ErrInternal
	}

	me := Me{User: sanitizeUser(usr)}

	p, err := s.users.GetProfile(ctx, userID)
	switch {
	case err == nil:
		me.Profile = &p
	case errors.Is(err, user.ErrProfileNotFound):
	default:
		return Me{}, ErrInternal
	}

	apps, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return Me{}, ErrInternal
	}
	me.ApplicationsSummary = analytics.Summarize(apps, s.now())
	return me, nil
}

func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, in CreateProfileInput) (user.Profile, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrNotFound
		}
		return user.Profile{}, ErrInternal
	}

	now := s.now().UTC()
	p := user.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      user.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Settings != nil {
		p.Settings = in.Settings.Normalize()
	} else {
		p.Settings = user.Settings{}.Normalize()
	}

	if err := s.users.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, user.ErrProfileAlreadyExists) {
			return user.Profile{}, ErrProfileExists
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileMissing
		}
		return user.Profile{}, ErrInternal
	}

	if in.FirstName != nil {
		p.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		p.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Settings != nil {
		p.Settings = in.Settings.Normalize()
	}
	p.UpdatedAt = s.now().UTC()

	if err := s.users.UpdateProfile(ctx, p); err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileMissing
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
