package apiCache

import (
	"context"
	"time"
)

// FetchFunc produces the value to cache on a miss. It is supplied per-call
// and may perform network I/O.
type FetchFunc func(ctx context.Context) (string, error)

// Service defines the interface for the cache-augmented fetch layer
// External packages should use this interface, not the concrete implementations
type Service interface {
	// GetOrFetch returns the cached value for key if present, otherwise
	// invokes fetch exactly once, stores the result with the given TTL and
	// returns it. A non-positive ttl uses the configured default.
	GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (string, error)
}
