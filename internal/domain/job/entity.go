package job

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("job not found")

type Job struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Description string
	SalaryRange string
	Tags        []string
	ExternalURL *string
	PostedAt    time.Time
}

// HasTag reports whether the job carries tag, ignoring case and surrounding space.
func (j Job) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range j.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// Summary is the reduced job shape embedded in favorites and applications.
type Summary struct {
	ID      int64
	Title   string
	Company string
}

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
