package app

import (
	"context"
	"log/slog"
	"time"

	"career-orient/internal/config"
	"career-orient/internal/database"
	dbpostgres "career-orient/internal/database/postgres"
	"career-orient/internal/infrastructure/cache"
	"career-orient/internal/infrastructure/persistence/postgres"
	"career-orient/internal/pkg/jwt"
	"career-orient/internal/repository"
	"career-orient/internal/scheduler"
	"career-orient/internal/usecase"
	"career-orient/internal/ws"

	"github.com/jackc/pgx/v5/tracelog"
)

// Container owns the process-wide dependencies.
type Container struct {
	Config config.Config
	Logger *slog.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Tokens jwt.Service

	Auth         *usecase.Auth
	Jobs         *usecase.JobList
	Quizzes      *usecase.Quiz
	Favorites    *usecase.Favorites
	Applications *usecase.Applications
	Users        *usecase.User

	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	queryLevel := tracelog.LogLevelWarn
	if logger.Enabled(ctx, slog.LevelDebug) {
		queryLevel = tracelog.LogLevelInfo
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database, dbpostgres.WithQueryLog(logger, queryLevel))
	if err != nil {
		return nil, err
	}

	return Build(cfg, logger, db, cache.NewRedis(cfg.Redis, logger)), nil
}

// Build wires use cases around an existing database and cache. A nil cache
// disables caching.
func Build(cfg config.Config, logger *slog.Logger, db database.DB, c *cache.Redis) *Container {
	if logger == nil {
		logger = slog.Default()
	}

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	hub := ws.NewHub(logger)

	users := postgres.NewUserRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	quizzes := repository.NewPostgresQuizRepository(db)
	results := repository.NewPostgresQuizResultRepository(db)
	favorites := repository.NewPostgresFavoriteRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)

	var jobCache usecase.Cache
	if c != nil {
		jobCache = c
	}
	jobUC := usecase.NewJobListUsecase(jobs, jobCache, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  c,
		Hub:    hub,
		Tokens: tokens,

		Auth:         usecase.NewAuthUsecase(users, tokens),
		Jobs:         jobUC,
		Quizzes:      usecase.NewQuizUsecase(quizzes, results, jobUC, hub, logger),
		Favorites:    usecase.NewFavoriteUsecase(favorites, jobs, hub),
		Applications: usecase.NewApplicationUsecase(applications, jobs, hub),
		Users:        usecase.NewUserUsecase(users, applications),

		Scheduler: scheduler.New(jobUC, cfg.Scheduler.CatalogRefreshSpec, logger),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
