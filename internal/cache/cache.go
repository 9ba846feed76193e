package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-key expiry.
// A miss is (nil, false, nil), never an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Incr atomically increments the integer at key, starting from 0, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}

// NoopCache never stores anything; every Get misses.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (NoopCache) Incr(ctx context.Context, key string) (int64, error) {
	return 0, nil
}
