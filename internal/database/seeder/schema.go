package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-orient/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

const missingColumnsSQL = `
SELECT want.name
FROM unnest($2::text[]) WITH ORDINALITY AS want(name, pos)
WHERE NOT EXISTS (
	SELECT 1 FROM information_schema.columns c
	WHERE c.table_schema = current_schema()
	  AND c.table_name = $1
	  AND c.column_name = want.name
)
ORDER BY want.pos`

// EnsureTableColumns fails with ErrSchemaMismatch when table lacks any of
// columns. Seeders call it before writing so an unmigrated database fails
// loudly.
func EnsureTableColumns(ctx context.Context, db database.Querier, table string, columns ...string) error {
	if db == nil {
		return database.ErrNilDB
	}
	if table == "" || len(columns) == 0 {
		return errors.New("ensure columns: table and columns are required")
	}

	rows, err := db.Query(ctx, missingColumnsSQL, table, columns)
	if err != nil {
		return err
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		missing = append(missing, table+"."+name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
