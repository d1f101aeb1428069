package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"career-orient/internal/domain/user"
	"career-orient/internal/pkg/jwt"
	ucauth "career-orient/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu       sync.Mutex
	users    map[string]user.User
	profiles map[uuid.UUID]user.Profile
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]user.User{}, profiles: map[uuid.UUID]user.Profile{}}
}

func (m *memUserRepo) CreateWithProfile(_ context.Context, u user.User, p user.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return user.ErrEmailTaken
	}
	m.users[u.Email] = u
	m.profiles[u.ID] = p
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

func (m *memUserRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (m *memUserRepo) CreateProfile(context.Context, user.Profile) error { return nil }
func (m *memUserRepo) UpdateProfile(context.Context, user.Profile) error { return nil }

func TestAuthUsecase_SignupLoginTokenIdentity(t *testing.T) {
	tokens := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(newMemUserRepo(), tokens)
	ctx := context.Background()

	acc, err := uc.Signup(ctx, ucauth.RegisterInput{Email: "erin@example.com", Password: "password123", FirstName: "Erin"})
	require.NoError(t, err)

	logged, token, err := uc.Login(ctx, ucauth.LoginInput{Email: "erin@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, acc.User.ID, logged.User.ID)
	require.NotEmpty(t, token)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, acc.User.ID, claims.UserID)
	assert.Equal(t, "erin@example.com", claims.Email)
}

func TestAuthUsecase_LoginWrongPassword(t *testing.T) {
	uc := NewAuthUsecase(newMemUserRepo(), jwt.NewHMACService("test-secret", time.Hour))
	ctx := context.Background()

	_, err := uc.Signup(ctx, ucauth.RegisterInput{Email: "finn@example.com", Password: "password123"})
	require.NoError(t, err)

	_, token, err := uc.Login(ctx, ucauth.LoginInput{Email: "finn@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthUsecase_LoginTokenFailure(t *testing.T) {
	uc := NewAuthUsecase(newMemUserRepo(), jwt.NewHMACService("", time.Hour))
	ctx := context.Background()

	_, err := uc.Signup(ctx, ucauth.RegisterInput{Email: "gale@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "gale@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInternal)
}
