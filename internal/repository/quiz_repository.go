package repository

import (
	"context"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/quiz"
)

type PostgresQuizRepository struct {
	db database.DB
}

func NewPostgresQuizRepository(db database.DB) *PostgresQuizRepository {
	return &PostgresQuizRepository{db: db}
}

func (r *PostgresQuizRepository) List(ctx context.Context) ([]quiz.Quiz, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, created_at, updated_at FROM quizzes ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]quiz.Quiz, 0)
	for rows.Next() {
		var q quiz.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads the quiz with its questions.
func (r *PostgresQuizRepository) GetByID(ctx context.Context, id int64) (quiz.Quiz, error) {
	var q quiz.Quiz
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, created_at, updated_at FROM quizzes WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return quiz.Quiz{}, quiz.ErrNotFound
		}
		return quiz.Quiz{}, err
	}

	qs, err := r.ListQuestions(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	q.Questions = qs
	return q, nil
}

func (r *PostgresQuizRepository) ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, quiz_id, position, text, options, option_tags, correct
		 FROM questions
		 WHERE quiz_id = $1
		 ORDER BY position ASC, id ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]quiz.Question, 0)
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Position, &q.Text, &q.Options, &q.OptionTags, &q.Correct); err != nil {
			return nil, err
		}
		if q.Options == nil {
			q.Options = []string{}
		}
		if q.OptionTags == nil {
			q.OptionTags = []string{}
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
