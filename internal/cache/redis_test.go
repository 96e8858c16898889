package cache

import (
	"context"
	"testing"
	"time"

	"pokemcp/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniRedis creates a mini redis server for testing
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := &RedisCache{
		client: client,
	}

	return mr, cache
}

func TestRedisCache_NewRedisCache_Success(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	redisURL := "redis://" + mr.Addr()
	cache, err := NewRedisCache(redisURL)

	require.NoError(t, err)
	assert.NotNil(t, cache)
}

func TestRedisCache_NewRedisCache_InvalidURL(t *testing.T) {
	cache, err := NewRedisCache("invalid://url::")

	assert.Error(t, err)
	assert.Nil(t, cache)
	assert.Contains(t, err.Error(), "failed to parse redis URL")
}

func TestRedisCache_NewRedisCache_ConnectionFailed(t *testing.T) {
	// Use invalid address that won't connect
	cache, err := NewRedisCache("redis://localhost:99999")

	assert.Error(t, err)
	assert.Nil(t, cache)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisCache_SetAndGet(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	ctx := context.Background()

	// Values are opaque serialized text; stored and returned verbatim
	err := cache.Set(ctx, "test-key", `{"name":"pikachu","id":25}`, 1*time.Hour)
	require.NoError(t, err)

	value, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"pikachu","id":25}`, value)
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	ctx := context.Background()

	// Try to get non-existent key
	value, err := cache.Get(ctx, "non-existent")

	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestRedisCache_Set_InvalidTTL(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

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

func TestRedisCache_Set_Overwrite(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

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

func TestRedisCache_Delete(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

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

func TestRedisCache_Delete_NonExistent(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	ctx := context.Background()

	// Delete non-existent key should not error
	err := cache.Delete(ctx, "non-existent")
	assert.NoError(t, err)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	ctx := context.Background()

	// Set a value with short TTL
	err := cache.Set(ctx, "expiring-key", "expiring-value", 1*time.Second)
	require.NoError(t, err)

	// Value should be available immediately
	value, err := cache.Get(ctx, "expiring-key")
	require.NoError(t, err)
	assert.Equal(t, "expiring-value", value)

	// Fast-forward time in miniredis
	mr.FastForward(2 * time.Second)

	// Value should be expired
	value, err = cache.Get(ctx, "expiring-key")
	assert.Empty(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestRedisCache_Close(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	// Close the cache
	err := cache.Close()
	assert.NoError(t, err)
}

func TestRedisCache_ContextCancellation(t *testing.T) {
	mr, cache := setupMiniRedis(t)
	defer mr.Close()

	// Create a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Operations should fail with context error
	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	assert.Error(t, err)

	_, err = cache.Get(ctx, "test-key")
	assert.Error(t, err)
}

func TestRedisCache_Get_WithError(t *testing.T) {
	mr, cache := setupMiniRedis(t)

	ctx := context.Background()

	// Close the miniredis server to force error
	mr.Close()

	// Try to get - should get a backend error, not a miss
	_, err := cache.Get(ctx, "test-key")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrCacheMiss)
	assert.Contains(t, err.Error(), "redis get failed")
}

func TestRedisCache_Set_WithError(t *testing.T) {
	mr, cache := setupMiniRedis(t)

	ctx := context.Background()

	// Close the miniredis server to force error
	mr.Close()

	// Try to set - should get error
	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis set failed")
}

func TestRedisCache_Delete_WithError(t *testing.T) {
	mr, cache := setupMiniRedis(t)

	ctx := context.Background()

	// Set a key
	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	require.NoError(t, err)

	// Close the miniredis server to force error
	mr.Close()

	// Try to delete - should get error
	err = cache.Delete(ctx, "test-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis delete failed")
}

func BenchmarkRedisCache_Set(b *testing.B) {
	mr := miniredis.RunT(b)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := &RedisCache{
		client: client,
	}

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, "bench-key", "bench-value", 1*time.Hour)
	}
}

func BenchmarkRedisCache_Get(b *testing.B) {
	mr := miniredis.RunT(b)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := &RedisCache{
		client: client,
	}

	ctx := context.Background()

	// Pre-populate
	_ = cache.Set(ctx, "bench-key", "bench-value", 1*time.Hour)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, "bench-key")
	}
}
