package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories branch on.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func IsUniqueViolation(err error) bool     { return sqlState(err) == codeUniqueViolation }
func IsForeignKeyViolation(err error) bool { return sqlState(err) == codeForeignKeyViolation }
func IsCheckViolation(err error) bool      { return sqlState(err) == codeCheckViolation }

// IsNoRows covers both the pgx and database/sql sentinels.
func IsNoRows(err error) bool { return isNoRows(err) }

// ConstraintName returns the violated constraint, or "" when err is not a
// Postgres error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
