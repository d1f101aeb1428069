package dto

import (
	"time"

	"career-orient/internal/domain/engagement"

	"github.com/google/uuid"
)

type FavoriteResponse struct {
	ID        int64               `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	JobID     int64               `json:"jobId"`
	CreatedAt time.Time           `json:"createdAt"`
	Job       *JobSummaryResponse `json:"job"`
}

type ApplicationResponse struct {
	ID        int64               `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	JobID     *int64              `json:"jobId"`
	Message   *string             `json:"message"`
	CreatedAt time.Time           `json:"createdAt"`
	Job       *JobSummaryResponse `json:"job"`
}

func NewFavoriteResponse(f engagement.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		JobID:     f.JobID,
		CreatedAt: f.CreatedAt,
		Job:       newJobSummaryResponse(f.Job),
	}
}

func NewFavoriteResponses(items []engagement.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(items))
	for _, f := range items {
		out = append(out, NewFavoriteResponse(f))
	}
	return out
}

func NewApplicationResponse(a engagement.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		JobID:     a.JobID,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		Job:       newJobSummaryResponse(a.Job),
	}
}

func NewApplicationResponses(items []engagement.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
