package usecase

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key string, value string) (bool, error)
}

const (
	jobCatalogKey     = "jobs:catalog"
	jobCatalogLockKey = "jobs:lock:catalog"
	jobListKeyPrefix  = "jobs:list:"
)
