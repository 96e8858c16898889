package cache

import (
	"context"
	"time"
)

// Service defines the interface for a key/value backing store. Values are
// opaque serialized text; the store never inspects them.
// External packages should use this interface, not the concrete implementations
type Service interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
