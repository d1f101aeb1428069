package postgres

import (
	"context"
	"fmt"

	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const (
	selectUser = `SELECT id, email, password_hash, created_at, updated_at FROM users`

	selectProfile = `SELECT id, user_id, first_name, last_name, role, settings, created_at, updated_at FROM profiles`
)

func (r *UserRepository) CreateWithProfile(ctx context.Context, u user.User, p user.Profile) error {
	settings, err := p.Settings.Marshal()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
			u.ID, u.Email, u.PasswordHash,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO profiles (id, user_id, first_name, last_name, role, settings)
			 VALUES ($1, $2, $3, $4, $5, $6::jsonb)`,
			p.ID, u.ID, p.FirstName, p.LastName, string(p.Role), string(settings),
		)
		return err
	})
	if dbpostgres.IsUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE email = $1`, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, selectProfile+` WHERE user_id = $1`, userID))
}

func (r *UserRepository) CreateProfile(ctx context.Context, p user.Profile) error {
	settings, err := p.Settings.Marshal()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, first_name, last_name, role, settings)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)`,
		p.ID, p.UserID, p.FirstName, p.LastName, string(p.Role), string(settings),
	)
	if dbpostgres.IsUniqueViolation(err) {
		return user.ErrProfileAlreadyExists
	}
	if dbpostgres.IsForeignKeyViolation(err) {
		return user.ErrNotFound
	}
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, p user.Profile) error {
	settings, err := p.Settings.Marshal()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET first_name = $1, last_name = $2, settings = $3::jsonb, updated_at = now()
		 WHERE user_id = $4`,
		p.FirstName, p.LastName, string(settings), p.UserID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func scanProfile(row database.Row) (user.Profile, error) {
	var (
		p    user.Profile
		role string
		raw  []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &role, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}

	parsedRole, err := user.ParseRole(role)
	if err != nil {
		return user.Profile{}, err
	}
	p.Role = parsedRole

	settings, err := user.ParseSettings(raw)
	if err != nil {
		return user.Profile{}, fmt.Errorf("decode settings: %w", err)
	}
	p.Settings = settings
	return p, nil
}
