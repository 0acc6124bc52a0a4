// Package cache memoizes computed layouts and rendered artifacts.
//
// # Backends
//
// Every backend implements [Cache]:
//
//   - [FileCache]: JSON envelopes under a local directory (CLI default)
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: stores nothing (caching disabled)
//
// # Keys
//
// A [Keyer] derives keys from content hashes plus the options that change
// the output. Layout keys combine the snapshot hash with viz type and canvas
// size; artifact keys combine the layout hash with format and render flags.
// [ScopedKeyer] prefixes every key for namespace isolation.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(cache.Hash(snapshot), cache.LayoutKeyOpts{
//	    VizType: "timeline",
//	    Width:   1200,
//	})
//
// # Errors
//
// Cache errors never fail a pipeline run; callers treat them as misses.
// Remote backends wrap transient failures with [Retryable] so they can be
// retried with [RetryWithBackoff].
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
	TTLSnapshot = time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop all of their entries.
type Clearer interface {
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
