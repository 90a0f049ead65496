package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level key/value cache. A miss returns (nil, nil).
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes all given keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error
}
