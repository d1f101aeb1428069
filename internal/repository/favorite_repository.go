package repository

import (
	"context"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresFavoriteRepository struct {
	db database.DB
}

func NewPostgresFavoriteRepository(db database.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

const selectFavorite = `SELECT f.id, f.user_id, f.job_id, f.created_at, j.title, j.company
	FROM favorite_jobs f
	JOIN jobs j ON j.id = f.job_id`

// Add relies on the (user_id, job_id) unique constraint: concurrent adds
// converge on a single row.
func (r *PostgresFavoriteRepository) Add(ctx context.Context, userID uuid.UUID, jobID int64) (engagement.Favorite, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO favorite_jobs (user_id, job_id) VALUES ($1, $2)
		 ON CONFLICT ON CONSTRAINT uq_favorite_jobs_user_job DO NOTHING`,
		userID, jobID,
	)
	if err != nil {
		if dbpostgres.IsForeignKeyViolation(err) {
			return engagement.Favorite{}, engagement.ErrJobNotFound
		}
		return engagement.Favorite{}, err
	}

	fav, err := scanFavorite(r.db.QueryRow(ctx, selectFavorite+` WHERE f.user_id = $1 AND f.job_id = $2`, userID, jobID))
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return engagement.Favorite{}, engagement.ErrJobNotFound
		}
		return engagement.Favorite{}, err
	}
	return fav, nil
}

func (r *PostgresFavoriteRepository) Remove(ctx context.Context, userID uuid.UUID, jobID int64) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM favorite_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
}

func (r *PostgresFavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]engagement.Favorite, error) {
	rows, err := r.db.Query(ctx, selectFavorite+` WHERE f.user_id = $1 ORDER BY f.created_at DESC, f.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]engagement.Favorite, 0)
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanFavorite(row database.Row) (engagement.Favorite, error) {
	var (
		f       engagement.Favorite
		summary job.Summary
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.JobID, &f.CreatedAt, &summary.Title, &summary.Company); err != nil {
		return engagement.Favorite{}, err
	}
	summary.ID = f.JobID
	f.Job = &summary
	return f, nil
}
