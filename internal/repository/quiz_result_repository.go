package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/quiz"

	"github.com/google/uuid"
)

type PostgresQuizResultRepository struct {
	db database.DB
}

func NewPostgresQuizResultRepository(db database.DB) *PostgresQuizResultRepository {
	return &PostgresQuizResultRepository{db: db}
}

const selectQuizResult = `SELECT id, user_id, quiz_id, result_data, score, created_at FROM quiz_results`

func (r *PostgresQuizResultRepository) Create(ctx context.Context, res quiz.Result) (quiz.Result, error) {
	data, err := json.Marshal(res.ResultData)
	if err != nil {
		return quiz.Result{}, fmt.Errorf("encode result data: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO quiz_results (user_id, quiz_id, result_data, score)
		 VALUES ($1, $2, $3::jsonb, $4)
		 RETURNING id, created_at`,
		res.UserID, res.QuizID, string(data), res.Score,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		if dbpostgres.IsForeignKeyViolation(err) {
			return quiz.Result{}, quiz.ErrNotFound
		}
		return quiz.Result{}, err
	}
	return res, nil
}

func (r *PostgresQuizResultRepository) GetByID(ctx context.Context, id int64) (quiz.Result, error) {
	res, err := scanQuizResult(r.db.QueryRow(ctx, selectQuizResult+` WHERE id = $1`, id))
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return quiz.Result{}, quiz.ErrResultNotFound
		}
		return quiz.Result{}, err
	}
	return res, nil
}

func (r *PostgresQuizResultRepository) ListByUser(ctx context.Context, userID uuid.UUID, quizID *int64) ([]quiz.Result, error) {
	rows, err := r.db.Query(ctx,
		selectQuizResult+`
		 WHERE user_id = $1 AND ($2::bigint IS NULL OR quiz_id = $2)
		 ORDER BY created_at DESC, id DESC`,
		userID, quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]quiz.Result, 0)
	for rows.Next() {
		res, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanQuizResult(row database.Row) (quiz.Result, error) {
	var (
		res quiz.Result
		raw []byte
	)
	if err := row.Scan(&res.ID, &res.UserID, &res.QuizID, &raw, &res.Score, &res.CreatedAt); err != nil {
		return quiz.Result{}, err
	}
	res.ResultData = quiz.Answers{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &res.ResultData); err != nil {
			return quiz.Result{}, fmt.Errorf("decode result data: %w", err)
		}
	}
	return res, nil
}
