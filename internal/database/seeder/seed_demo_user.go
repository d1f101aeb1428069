package seeder

import (
	"context"

	"career-orient/internal/database"
	"career-orient/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail    = "alice@example.com"
	DemoPassword = "password123"
)

type DemoUserSeeder struct{}

func (DemoUserSeeder) Name() string { return "demo_user" }

func (DemoUserSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "user_id", "first_name", "last_name", "role", "settings"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	settings, err := user.Settings{
		Bio:         "Passionate about modern web development",
		Location:    "Paris",
		Skills:      []string{"React", "TypeScript"},
		Preferences: user.Preferences{JobAlerts: true, PublicProfile: true},
	}.Marshal()
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		userID := uuid.New()
		inserted, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
			userID, DemoEmail, string(hash),
		)
		if err != nil {
			return err
		}
		if inserted == 0 {
			return nil
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO profiles (id, user_id, first_name, last_name, role, settings) VALUES ($1, $2, $3, $4, $5, $6::jsonb)`,
			uuid.New(), userID, "Alice", "Martin", string(user.RoleUser), string(settings),
		)
		return err
	})
}
