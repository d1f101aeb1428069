package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"career-orient/internal/domain/matching"
	"career-orient/internal/domain/quiz"

	"github.com/google/uuid"
)

const MaxRecommendationLimit = 100

type SubmitResultInput struct {
	QuizID int64
	// UserID defaults to the caller when nil.
	UserID     *uuid.UUID
	ResultData quiz.Answers
}

type QuizUsecase interface {
	ListQuizzes(ctx context.Context) ([]quiz.Quiz, error)
	GetQuiz(ctx context.Context, id int64) (quiz.Quiz, error)
	ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error)

	SubmitResult(ctx context.Context, callerID uuid.UUID, in SubmitResultInput) (quiz.Result, error)
	ListResults(ctx context.Context, callerID uuid.UUID, quizID *int64) ([]quiz.Result, error)

	Recommend(ctx context.Context, callerID uuid.UUID, resultID int64, limit int) ([]matching.Result, error)
	Match(ctx context.Context, quizID int64, answers quiz.Answers, limit int) ([]matching.Result, error)
}

type Quiz struct {
	quizzes quiz.Repository
	results quiz.ResultRepository
	catalog JobCatalog
	events  Publisher
	logger  *slog.Logger
	now     func() time.Time
}

func NewQuizUsecase(quizzes quiz.Repository, results quiz.ResultRepository, catalog JobCatalog, events Publisher, logger *slog.Logger) *Quiz {
	if logger == nil {
		logger = slog.Default()
	}
	return &Quiz{
		quizzes: quizzes,
		results: results,
		catalog: catalog,
		events:  publisherOrNop(events),
		logger:  logger,
		now:     time.Now,
	}
}

func (u *Quiz) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	items, err := u.quizzes.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []quiz.Quiz{}
	}
	return items, nil
}

func (u *Quiz) GetQuiz(ctx context.Context, id int64) (quiz.Quiz, error) {
	q, err := u.loadQuiz(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	questions, err := u.quizzes.ListQuestions(ctx, id)
	if err != nil {
		return quiz.Quiz{}, ErrInternal
	}
	q.Questions = questions
	if q.Questions == nil {
		q.Questions = []quiz.Question{}
	}
	return q, nil
}

// ListQuestions returns an empty list for an unknown quiz.
func (u *Quiz) ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error) {
	if quizID <= 0 {
		return []quiz.Question{}, nil
	}
	questions, err := u.quizzes.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, ErrInternal
	}
	if questions == nil {
		questions = []quiz.Question{}
	}
	return questions, nil
}

// SubmitResult stores the caller's answers. The score is the number of
// answered questions; anything the client computed is ignored.
func (u *Quiz) SubmitResult(ctx context.Context, callerID uuid.UUID, in SubmitResultInput) (quiz.Result, error) {
	if callerID == uuid.Nil {
		return quiz.Result{}, ErrUnauthorized
	}
	owner := callerID
	if in.UserID != nil {
		owner = *in.UserID
	}
	if owner != callerID {
		return quiz.Result{}, ErrForbidden
	}

	if _, err := u.loadQuiz(ctx, in.QuizID); err != nil {
		return quiz.Result{}, err
	}
	questions, err := u.quizzes.ListQuestions(ctx, in.QuizID)
	if err != nil {
		return quiz.Result{}, ErrInternal
	}
	if err := validateAnswers(questions, in.ResultData); err != nil {
		return quiz.Result{}, err
	}

	created, err := u.results.Create(ctx, quiz.Result{
		UserID:     owner,
		QuizID:     in.QuizID,
		ResultData: in.ResultData,
		Score:      len(in.ResultData),
		CreatedAt:  u.now().UTC(),
	})
	if err != nil {
		u.logger.Error("store quiz result", "user_id", owner, "quiz_id", in.QuizID, "error", err)
		return quiz.Result{}, ErrInternal
	}

	u.events.Publish(owner, EventQuizResultCreated, created)
	return created, nil
}

func (u *Quiz) ListResults(ctx context.Context, callerID uuid.UUID, quizID *int64) ([]quiz.Result, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.results.ListByUser(ctx, callerID, quizID)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []quiz.Result{}
	}
	return items, nil
}

// Recommend ranks the catalog against a stored result owned by the caller.
func (u *Quiz) Recommend(ctx context.Context, callerID uuid.UUID, resultID int64, limit int) ([]matching.Result, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	k, err := recommendationLimit(limit)
	if err != nil {
		return nil, err
	}
	if resultID <= 0 {
		return nil, ErrResultNotFound
	}

	res, err := u.results.GetByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, quiz.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, ErrInternal
	}
	if res.UserID != callerID {
		return nil, ErrForbidden
	}

	questions, err := u.quizzes.ListQuestions(ctx, res.QuizID)
	if err != nil {
		return nil, ErrInternal
	}
	return u.rank(ctx, questions, res.ResultData, k)
}

// Match ranks the catalog against answers that were not saved.
func (u *Quiz) Match(ctx context.Context, quizID int64, answers quiz.Answers, limit int) ([]matching.Result, error) {
	k, err := recommendationLimit(limit)
	if err != nil {
		return nil, err
	}
	if _, err := u.loadQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	questions, err := u.quizzes.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, ErrInternal
	}
	if err := validateAnswers(questions, answers); err != nil {
		return nil, err
	}
	return u.rank(ctx, questions, answers, k)
}

func (u *Quiz) rank(ctx context.Context, questions []quiz.Question, answers quiz.Answers, k int) ([]matching.Result, error) {
	jobs, err := u.catalog.Catalog(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := matching.Rank(questions, answers, jobs, k)
	if out == nil {
		out = []matching.Result{}
	}
	return out, nil
}

func (u *Quiz) loadQuiz(ctx context.Context, id int64) (quiz.Quiz, error) {
	if id <= 0 {
		return quiz.Quiz{}, ErrQuizNotFound
	}
	q, err := u.quizzes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, ErrInternal
	}
	return q, nil
}

func recommendationLimit(limit int) (int, error) {
	if limit == 0 {
		return matching.DefaultTopK, nil
	}
	if limit < 0 || limit > MaxRecommendationLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxRecommendationLimit)
	}
	return limit, nil
}

// validateAnswers requires at least one answer, every key to be a question
// of the quiz and every index to name one of its options.
func validateAnswers(questions []quiz.Question, answers quiz.Answers) error {
	if len(answers) == 0 {
		return fmt.Errorf("%w: resultData must contain at least one answer", ErrInvalidInput)
	}
	byID := make(map[int64]quiz.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for qid, idx := range answers {
		q, ok := byID[qid]
		if !ok {
			return fmt.Errorf("%w: question %d is not part of this quiz", ErrInvalidInput, qid)
		}
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("%w: option %d out of range for question %d", ErrInvalidInput, idx, qid)
		}
	}
	return nil
}
