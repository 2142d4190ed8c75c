// Package cache provides a small byte cache for rendered artifacts.
//
// Rendering a document tree through Graphviz is the only expensive step in
// the CLI, so the tree command caches its SVG and PNG output keyed by the
// DOT source. Entries are stored as files with an optional expiration;
// NullCache disables caching without branching at the call sites.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The second result reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey derives the cache key for one rendered artifact: the content
// hash of the DOT source plus the output format. Identical documents and
// options produce identical DOT, so the key is stable across runs.
func RenderKey(dot, format string) string {
	return "render:" + Hash([]byte(dot)) + ":" + format
}

// NullCache misses every Get and discards every Set. It stands in for
// FileCache when caching is switched off or no cache directory is
// available, so render paths never branch on a nil cache.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
