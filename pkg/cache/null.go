package cache

import (
	"context"
	"time"
)

// NullCache discards everything. Runners fall back to it when caching is
// disabled (--no-cache, backend "none"), so every render refetches its asset
// bytes and re-encodes its artifact.
type NullCache struct{}

// NewNullCache creates a cache that never stores or returns anything.
func NewNullCache() Cache {
	return NullCache{}
}

// Get reports a miss for every key.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the data.
func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete reports success without looking at the key.
func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close has nothing to release.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}
