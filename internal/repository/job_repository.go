package repository

import (
	"context"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/job"
)

const (
	maxListLimit = 100

	selectJob = `SELECT id, title, company, location, description, salary_range, tags, external_url, posted_at FROM jobs`
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		selectJob+` ORDER BY posted_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

// ListAll returns the whole catalog ordered by id; matching ranks over it.
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, selectJob+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var c int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id))
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.SalaryRange, &j.Tags, &j.ExternalURL, &j.PostedAt); err != nil {
		return job.Job{}, err
	}
	if j.Tags == nil {
		j.Tags = []string{}
	}
	return j, nil
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
