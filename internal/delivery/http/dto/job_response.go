package dto

import (
	"time"

	"career-orient/internal/domain/job"
)

type JobResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SalaryRange string    `json:"salaryRange"`
	Tags        []string  `json:"tags"`
	ExternalURL *string   `json:"externalUrl"`
	PostedAt    time.Time `json:"postedAt"`
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalCount int           `json:"totalCount"`
}

type JobSummaryResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

func NewJobResponse(j job.Job) JobResponse {
	tags := j.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		SalaryRange: j.SalaryRange,
		Tags:        tags,
		ExternalURL: j.ExternalURL,
		PostedAt:    j.PostedAt,
	}
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func newJobSummaryResponse(s *job.Summary) *JobSummaryResponse {
	if s == nil {
		return nil
	}
	return &JobSummaryResponse{ID: s.ID, Title: s.Title, Company: s.Company}
}
