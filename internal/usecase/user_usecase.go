package usecase

import (
	"context"

	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/user"
	ucuser "career-orient/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (ucuser.Me, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, in ucuser.CreateProfileInput) (user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository, applications engagement.ApplicationRepository) *User {
	return &User{svc: ucuser.NewService(users, applications)}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (ucuser.Me, error) {
	if userID == uuid.Nil {
		return ucuser.Me{}, ErrUnauthorized
	}
	return u.svc.GetMe(ctx, userID)
}

func (u *User) CreateProfile(ctx context.Context, userID uuid.UUID, in ucuser.CreateProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	return u.svc.CreateProfile(ctx, userID, in)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	return u.svc.UpdateProfile(ctx, userID, in)
}
