package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pokemcp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set a value
	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	require.NoError(t, err)

	// Get the value
	value, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", value)
}

func TestMemoryCache_Get_NotFound(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Try to get non-existent key
	value, err := cache.Get(ctx, "non-existent")
	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set a value with very short TTL
	err := cache.Set(ctx, "expiring-key", "expiring-value", 100*time.Millisecond)
	require.NoError(t, err)

	// Wait for expiration
	time.Sleep(200 * time.Millisecond)

	// Expired entries count as misses
	value, err := cache.Get(ctx, "expiring-key")
	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestMemoryCache_Set_InvalidTTL(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero TTL", 0},
		{"negative TTL", -1 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(ctx, "test-key", "test-value", tt.ttl)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "TTL must be positive")
		})
	}
}

func TestMemoryCache_Set_Overwrite(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set initial value
	err := cache.Set(ctx, "key", "value1", 1*time.Hour)
	require.NoError(t, err)

	// Overwrite with new value
	err = cache.Set(ctx, "key", "value2", 1*time.Hour)
	require.NoError(t, err)

	// Get the value
	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value2", value)
}

func TestMemoryCache_Set_OverwriteResetsExpiry(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set a value that would expire shortly
	err := cache.Set(ctx, "key", "value1", 100*time.Millisecond)
	require.NoError(t, err)

	// Overwrite with a longer TTL before it expires
	err = cache.Set(ctx, "key", "value2", 1*time.Hour)
	require.NoError(t, err)

	// Wait past the original expiry
	time.Sleep(200 * time.Millisecond)

	// The rewrite reset the clock, so the entry is still live
	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value2", value)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set a value
	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	require.NoError(t, err)

	// Delete the value
	err = cache.Delete(ctx, "test-key")
	require.NoError(t, err)

	// Verify it's gone
	value, err := cache.Get(ctx, "test-key")
	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestMemoryCache_Delete_NonExistent(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Delete non-existent key should not error
	err := cache.Delete(ctx, "non-existent")
	assert.NoError(t, err)
}

func TestMemoryCache_Size(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Initially empty
	assert.Equal(t, 0, cache.Size())

	// Add entries
	err := cache.Set(ctx, "key1", "value1", 1*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Size())

	err = cache.Set(ctx, "key2", "value2", 1*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Size())

	// Delete entry
	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Pre-populate cache
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		err := cache.Set(ctx, key, fmt.Sprintf("value-%d", i), 1*time.Hour)
		require.NoError(t, err)
	}

	// Concurrent reads and writes
	done := make(chan bool)

	// Writers
	for i := 0; i < 10; i++ {
		go func(id int) {
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("concurrent-%d-%d", id, j)
				_ = cache.Set(ctx, key, "payload", 1*time.Hour)
			}
			done <- true
		}(i)
	}

	// Readers
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j)
				_, _ = cache.Get(ctx, key)
			}
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 20; i++ {
		<-done
	}

	// Verify cache is still functional
	err := cache.Set(ctx, "final-test", "works", 1*time.Hour)
	require.NoError(t, err)

	value, err := cache.Get(ctx, "final-test")
	require.NoError(t, err)
	assert.Equal(t, "works", value)
}

func TestMemoryCache_ExpirationBehavior(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Set entries with different expiration times
	err := cache.Set(ctx, "short", "expires-soon", 100*time.Millisecond)
	require.NoError(t, err)

	err = cache.Set(ctx, "long", "expires-later", 1*time.Hour)
	require.NoError(t, err)

	// Both should be available immediately
	value, err := cache.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, "expires-soon", value)

	value, err = cache.Get(ctx, "long")
	require.NoError(t, err)
	assert.Equal(t, "expires-later", value)

	// Wait for short to expire
	time.Sleep(200 * time.Millisecond)

	// Short should be expired
	value, err = cache.Get(ctx, "short")
	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)

	// Long should still be available
	value, err = cache.Get(ctx, "long")
	require.NoError(t, err)
	assert.Equal(t, "expires-later", value)
}

func TestNewMemoryCache_PublicConstructor(t *testing.T) {
	cache := NewMemoryCache()
	assert.NotNil(t, cache)

	// Verify it works
	ctx := context.Background()
	err := cache.Set(ctx, "test", "value", 1*time.Hour)
	require.NoError(t, err)

	value, err := cache.Get(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func BenchmarkMemoryCache_Set(b *testing.B) {
	cache := newMemoryCache()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, "bench-key", "bench-value", 1*time.Hour)
	}
}

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := newMemoryCache()
	ctx := context.Background()

	// Pre-populate
	_ = cache.Set(ctx, "bench-key", "bench-value", 1*time.Hour)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, "bench-key")
	}
}
