package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"career-orient/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "plain",
			cfg: config.DatabaseConfig{
				DBHost: " localhost ", DBPort: "5432", DBUser: "app", DBPassword: "secret",
				DBName: "orient", DBSSLMode: "disable",
			},
			want: "host=localhost port=5432 user=app password=secret dbname=orient sslmode=disable",
		},
		{
			name: "quoted password",
			cfg:  config.DatabaseConfig{DBHost: "db", DBPassword: `it's a \secret`},
			want: `host=db password='it\'s a \\secret'`,
		},
		{
			name: "empty values skipped",
			cfg:  config.DatabaseConfig{DBName: "orient"},
			want: "dbname=orient",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DSN(tc.cfg))
		})
	}
}

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "favorites_user_id_job_id_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.Equal(t, "favorites_user_id_job_id_key", ConstraintName(unique))
	assert.Empty(t, ConstraintName(errors.New("boom")))

	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("wrap: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(nil))
}

func TestNilPool(t *testing.T) {
	var p *Pool
	assert.Error(t, p.Ping(context.Background()))
	assert.NoError(t, p.Close())
	assert.Nil(t, p.SQLDB())

	_, err := p.Begin(context.Background())
	assert.Error(t, err)

	var q querier
	assert.Error(t, q.QueryRow(context.Background(), "SELECT 1").Scan())
	_, err = q.Exec(context.Background(), "SELECT 1")
	assert.Error(t, err)
}

func TestSlogAdapter_DropsArgs(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	slogAdapter{logger: logger}.Log(context.Background(), tracelog.LogLevelWarn, "Query", map[string]any{
		"sql":  "SELECT 1",
		"args": []any{"password123"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "pgx: Query")
	assert.Contains(t, out, "SELECT 1")
	assert.NotContains(t, out, "password123")
}
