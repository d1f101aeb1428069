package dto

import (
	"time"

	"career-orient/internal/domain/analytics"
	"career-orient/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"userId"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Role      user.Role     `json:"role"`
	Settings  user.Settings `json:"settings"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type UserResponse struct {
	ID      uuid.UUID        `json:"id"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MeResponse struct {
	ID                  uuid.UUID         `json:"id"`
	Email               string            `json:"email"`
	CreatedAt           time.Time         `json:"createdAt"`
	Profile             *ProfileResponse  `json:"profile"`
	ApplicationsSummary analytics.Summary `json:"applicationsSummary"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.Role,
		Settings:  p.Settings.Normalize(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewUserResponse(u user.User, p *user.Profile) UserResponse {
	out := UserResponse{ID: u.ID, Email: u.Email}
	if p != nil {
		pr := NewProfileResponse(*p)
		out.Profile = &pr
	}
	return out
}
