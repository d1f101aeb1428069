package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"career-orient/internal/config"
	"career-orient/internal/database/migration"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/database/seeder"
	"career-orient/internal/pkg/logger"
)

func main() {
	only := flag.String("only", "", "comma-separated seeders to run (jobs, quiz, demo_user); empty runs all")
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("", "info").Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.App.Environment, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if !*skipMigrate {
		if err := (migration.Runner{Logger: log}).Run(ctx, db.SQLDB()); err != nil {
			log.Error("migration failed", "error", err)
			return
		}
	}

	r := seeder.Runner{Seeders: seeder.Defaults(), Only: splitList(*only), Logger: log}
	if err := r.Run(ctx, db); err != nil {
		log.Error("seeding failed", "error", err)
		return
	}
	log.Info("seeding complete")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
