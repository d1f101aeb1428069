package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
	// AllowedOrigins feeds CORS and the websocket origin check; empty allows
	// any origin.
	AllowedOrigins []string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type SchedulerConfig struct {
	// CatalogRefreshSpec is a robfig/cron spec; "off" in the environment
	// yields an empty spec, which disables the job.
	CatalogRefreshSpec string
}

const (
	defaultJWTExpiresIn       = 7 * 24 * time.Hour
	defaultRedisAddr          = "localhost:6379"
	defaultRedisTTL           = 10 * time.Minute
	defaultCatalogRefreshSpec = "@every 15m"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads an optional .env file from the working directory and then
// builds the configuration from the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv. Required keys that are empty
// and values that fail to parse are reported together.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	duration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	integer := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    optDefault("LOG_LEVEL", "info"),

		AllowedOrigins: list(opt("ALLOWED_ORIGINS")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout: duration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(integer("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(integer("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		ExpiresIn: duration("JWT_EXPIRES_IN", defaultJWTExpiresIn),
	}

	redisAddr := optDefault("REDIS_ADDR", defaultRedisAddr)
	if strings.EqualFold(redisAddr, "off") {
		redisAddr = ""
	}
	cfg.Redis = RedisConfig{
		Addr:     redisAddr,
		Password: opt("REDIS_PASSWORD"),
		DB:       integer("REDIS_DB", 0),
		TTL:      duration("REDIS_TTL", defaultRedisTTL),
	}

	refresh := optDefault("CATALOG_REFRESH_SPEC", defaultCatalogRefreshSpec)
	if strings.EqualFold(refresh, "off") {
		refresh = ""
	}
	cfg.Scheduler = SchedulerConfig{CatalogRefreshSpec: refresh}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// list splits a comma-separated value, dropping blanks.
func list(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}
