// Package cache provides pluggable byte caching for fetched asset images and
// rendered artifacts.
//
// Backends:
//   - FileCache: hash-pathed files with TTL metadata, for CLI usage
//   - MemoryCache: in-process map, for tests and short-lived servers
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: caching disabled
//
// Keys are produced by a [Keyer] so asset and artifact entries never collide
// and long URLs become safe fixed-length keys.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for byte cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind.
const (
	// TTLAsset covers fetched asset image bytes. Asset URLs are stable but
	// their processed variants can be regenerated upstream.
	TTLAsset = 24 * time.Hour

	// TTLArtifact covers rendered export artifacts, which are cheap to
	// recompute and keyed by content hash anyway.
	TTLArtifact = time.Hour
)
