package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"career-orient/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL = 30 * time.Second
	scanBatch      = 200
	dialTimeout    = 2 * time.Second
)

var ErrUnavailable = errors.New("redis unavailable")

// deleteIfValue removes KEYS[1] only while it still holds ARGV[1], so a lock
// that expired and was taken by someone else is left alone.
var deleteIfValue = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a JSON cache. Without a reachable server it runs in bypass mode:
// reads miss, writes succeed and locks are never granted.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration

	warned atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		logger.Info("redis address not set, cache disabled")
		return &Redis{logger: logger, ttl: cfg.TTL}
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return &Redis{logger: logger, ttl: cfg.TTL}
	}

	return NewWithClient(client, cfg.TTL, logger)
}

// NewWithClient wraps an existing client. A nil client yields bypass mode.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, logger: logger, ttl: ttl}
}

func (r *Redis) bypass() bool {
	return r == nil || r.client == nil
}

// observe logs the first transport failure and passes err through.
func (r *Redis) observe(err error) error {
	if err != nil && !errors.Is(err, redis.Nil) && r.warned.CompareAndSwap(false, true) {
		r.logger.Warn("redis command failed", "error", err)
	}
	return err
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.bypass() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.bypass() {
		return nil
	}
	return r.client.Close()
}

// GetJSON decodes the value under key into out and reports whether it was
// present.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.bypass() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.observe(err)
	case len(b) == 0:
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key; ttl <= 0 uses the configured default.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.bypass() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.observe(r.client.Set(ctx, key, b, ttl).Err())
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.bypass() {
		return nil
	}
	return r.observe(r.client.Del(ctx, key).Err())
}

// DeletePrefix unlinks every key starting with prefix, one SCAN page at a
// time.
func (r *Redis) DeletePrefix(ctx context.Context, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if r.bypass() || prefix == "" {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return r.observe(err)
		}
		if len(keys) > 0 {
			if err := r.client.Unlink(ctx, keys...).Err(); err != nil {
				return r.observe(err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// SetIfNotExists backs short-lived locks. It never grants one in bypass mode.
func (r *Redis) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if r.bypass() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, r.observe(err)
	}
	return ok, nil
}

// DeleteIfValue deletes key only while it holds value.
func (r *Redis) DeleteIfValue(ctx context.Context, key string, value string) (bool, error) {
	if r.bypass() {
		return false, nil
	}
	n, err := deleteIfValue.Run(ctx, r.client, []string{key}, value).Int()
	if err != nil {
		return false, r.observe(err)
	}
	return n == 1, nil
}
