package usecase

import (
	"context"

	"career-orient/internal/domain/user"
	"career-orient/internal/pkg/jwt"
	ucauth "career-orient/internal/usecase/auth"
)

type AuthUsecase interface {
	Signup(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, error)
	Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), jwt: jwtSvc}
}

func (u *Auth) Signup(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, error) {
	return u.authSvc.Register(ctx, in)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return ucauth.Account{}, "", err
	}

	token, err := u.jwt.GenerateAccessToken(acc.User.ID, acc.User.Email)
	if err != nil {
		return ucauth.Account{}, "", ErrInternal
	}
	return acc, token, nil
}
