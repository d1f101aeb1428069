package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("quiz not found")
	ErrResultNotFound = errors.New("quiz result not found")
)

type Quiz struct {
	ID          int64
	Title       string
	Description string
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Question struct {
	ID       int64
	QuizID   int64
	Position int
	Text     string
	Options  []string
	// OptionTags[i] is the tag implied by choosing Options[i]; "" means none.
	OptionTags []string
	Correct    *int
}

// TagFor returns the tag implied by choosing option index.
func (q Question) TagFor(index int) (string, bool) {
	if index < 0 || index >= len(q.Options) || index >= len(q.OptionTags) {
		return "", false
	}
	t := q.OptionTags[index]
	if t == "" {
		return "", false
	}
	return t, true
}

// Answers maps question id to chosen option index.
type Answers map[int64]int

type Result struct {
	ID         int64
	UserID     uuid.UUID
	QuizID     int64
	ResultData Answers
	Score      int
	CreatedAt  time.Time
}

type Repository interface {
	List(ctx context.Context) ([]Quiz, error)
	GetByID(ctx context.Context, id int64) (Quiz, error)
	ListQuestions(ctx context.Context, quizID int64) ([]Question, error)
}

type ResultRepository interface {
	Create(ctx context.Context, r Result) (Result, error)
	GetByID(ctx context.Context, id int64) (Result, error)
	ListByUser(ctx context.Context, userID uuid.UUID, quizID *int64) ([]Result, error)
}
