package apiCache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pokemcp/internal/cache"
	"pokemcp/internal/models"
)

// apiCache implements Service on top of a generic backing store. The key must
// already encode every parameter that affects the result; no normalization
// happens here. Concurrent misses on the same key each invoke their own
// fetch and the last write wins, which is acceptable for idempotent reads
// from an immutable upstream.
type apiCache struct {
	store      cache.Service
	defaultTTL time.Duration
}

// New creates a new cache-augmented fetch layer over the given backing store
func New(store cache.Service, defaultTTL time.Duration) Service {
	return &apiCache{
		store:      store,
		defaultTTL: defaultTTL,
	}
}

// GetOrFetch implements the hit/miss/store contract. Errors from the backing
// store or from fetch propagate unmodified; nothing is cached on failure.
func (a *apiCache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (string, error) {
	if key == "" {
		return "", models.ErrEmptyCacheKey
	}

	value, err := a.store.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, models.ErrCacheMiss) {
		// Backing-store failure, not a miss. No fallback to fetching.
		return "", err
	}

	result, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	if ttl <= 0 {
		ttl = a.defaultTTL
	}

	if err := a.store.Set(ctx, key, result, ttl); err != nil {
		return "", fmt.Errorf("failed to store fetched value for %q: %w", key, err)
	}

	return result, nil
}
