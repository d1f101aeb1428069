package repository

import (
	"context"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a engagement.Application) (engagement.Application, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, message) VALUES ($1, $2, $3) RETURNING id, created_at`,
		a.UserID, a.JobID, a.Message,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		switch {
		case dbpostgres.IsUniqueViolation(err) && dbpostgres.ConstraintName(err) == "uq_applications_user_job":
			return engagement.Application{}, engagement.ErrAlreadyApplied
		case dbpostgres.IsForeignKeyViolation(err) && dbpostgres.ConstraintName(err) == "applications_job_id_fkey":
			return engagement.Application{}, engagement.ErrJobNotFound
		default:
			return engagement.Application{}, err
		}
	}
	return a, nil
}

// ListByUser returns the user's applications newest first; applications whose
// job was deleted carry a nil Job.
func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]engagement.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.message, a.created_at, j.id, j.title, j.company
		 FROM applications a
		 LEFT JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]engagement.Application, 0)
	for rows.Next() {
		var (
			a       engagement.Application
			jobID   *int64
			title   *string
			company *string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Message, &a.CreatedAt, &jobID, &title, &company); err != nil {
			return nil, err
		}
		if jobID != nil {
			a.Job = &job.Summary{ID: *jobID, Title: deref(title), Company: deref(company)}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
