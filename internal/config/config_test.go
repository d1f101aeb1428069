package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":   "career-orient",
		"APP_ENV":    "development",
		"HTTP_PORT":  "4000",
		"JWT_SECRET": "secret",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.App.HTTPPort)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "@every 15m", cfg.Scheduler.CatalogRefreshSpec)
	assert.Empty(t, cfg.App.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_MissingRequired(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{"APP_NAME": "x"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromEnv_Overrides(t *testing.T) {
	env := baseEnv()
	env["APP_ENV"] = "production"
	env["JWT_EXPIRES_IN"] = "1h"
	env["REDIS_DB"] = "2"
	env["DB_POOL_MAX_CONNS"] = "8"
	env["CATALOG_REFRESH_SPEC"] = "off"
	env["REDIS_ADDR"] = "OFF"
	env["ALLOWED_ORIGINS"] = " https://a.example.com, ,https://b.example.com "

	cfg, err := FromEnv(envFrom(env))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, int32(8), cfg.Database.PoolMaxConns)
	assert.Empty(t, cfg.Scheduler.CatalogRefreshSpec)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["JWT_EXPIRES_IN"] = "seven days"
	env["REDIS_DB"] = "-1"

	_, err := FromEnv(envFrom(env))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidEnv))
	assert.Contains(t, err.Error(), "JWT_EXPIRES_IN")
	assert.Contains(t, err.Error(), "REDIS_DB")
}
