package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"career-orient/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

const minPasswordLen = 8

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

// Account is a user together with its profile. Profile is nil for users
// created before profiles were mandatory.
type Account struct {
	User    user.User
	Profile *user.Profile
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return Account{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Account{}, ErrInternal
	}
	if exists {
		return Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, ErrInternal
	}

	now := s.now().UTC()
	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p := user.Profile{
		ID:        uuid.New(),
		UserID:    u.ID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      user.RoleUser,
		Settings:  user.Settings{}.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.CreateWithProfile(ctx, u, p); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return Account{}, ErrEmailAlreadyRegistered
		}
		return Account{}, ErrInternal
	}

	return Account{User: sanitizeUser(u), Profile: &p}, nil
}

// Login fails with ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (s *Service) Login(ctx context.Context, in LoginInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Account{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	acc := Account{User: sanitizeUser(u)}
	p, err := s.users.GetProfile(ctx, u.ID)
	switch {
	case err == nil:
		acc.Profile = &p
	case errors.Is(err, user.ErrProfileNotFound):
	default:
		return Account{}, ErrInternal
	}
	return acc, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLen
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
