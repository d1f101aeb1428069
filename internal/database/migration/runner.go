package migration

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"career-orient/internal/database/migrations"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

type Runner struct {
	// FS holds the *.sql files; defaults to the embedded migrations.
	FS fs.FS
	// Dir is the directory inside FS; defaults to ".".
	Dir    string
	Logger *slog.Logger
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	fsys := r.FS
	if fsys == nil {
		fsys = migrations.FS
	}
	dir := r.Dir
	if dir == "" {
		dir = "."
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return err
	}

	if r.Logger != nil {
		v, err := goose.GetDBVersionContext(ctx, db)
		if err == nil {
			r.Logger.Info("migrations applied", "version", v)
		}
	}
	return nil
}
