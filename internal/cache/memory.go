package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pokemcp/internal/models"
)

// MemoryCache implements Service using process-local storage. Entries carry
// an expiry timestamp checked on read, so TTL behaves the same as with the
// Redis backend.
type MemoryCache struct {
	data  map[string]*memoryEntry
	mutex sync.RWMutex
}

// memoryEntry represents a single cache entry with expiration
type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() Service {
	return newMemoryCache()
}

// newMemoryCache creates the concrete implementation
func newMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]*memoryEntry),
	}

	// Start cleanup routine
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached value for the given key
func (m *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entry, exists := m.data[key]
	if !exists {
		return "", models.ErrCacheMiss
	}

	// Expired entries count as misses; the background routine removes them
	if time.Now().After(entry.expiresAt) {
		return "", models.ErrCacheMiss
	}

	return entry.value, nil
}

// Set stores a value in the cache with the specified TTL. Writing a key
// overwrites any prior value and resets expiry.
func (m *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("TTL must be positive, got: %v", ttl)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data[key] = &memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes an entry from the cache
func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache
func (m *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		m.mutex.Lock()
		for key, entry := range m.data {
			if now.After(entry.expiresAt) {
				delete(m.data, key)
			}
		}
		m.mutex.Unlock()
	}
}

// Size returns the current number of cached entries (for monitoring)
func (m *MemoryCache) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.data)
}
