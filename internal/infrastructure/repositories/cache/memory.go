package cache

import (
	"context"
	"sync"
	"time"

	"crypto-ticker-service/internal/domain/interfaces"
)

// cacheItem holds a value together with its expiry time
type cacheItem struct {
	value     string
	expiresAt time.Time
}

// isExpired checks whether the item's TTL has elapsed
func (item *cacheItem) isExpired() bool {
	return time.Now().After(item.expiresAt)
}

// MemoryCache implements the Cache interface using local memory
type MemoryCache struct {
	items map[string]*cacheItem
	mu    sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() interfaces.Cache {
	return &MemoryCache{
		items: make(map[string]*cacheItem),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return "", ErrKeyNotFound
	}

	if item.isExpired() {
		// Drop the expired key to avoid leaking memory
		_ = c.Delete(ctx, key)
		return "", ErrKeyExpired
	}

	return item.value, nil
}

// Set stores a value with a TTL, overwriting any existing entry, and does
// a light sweep of expired entries to keep the map bounded.
func (c *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, k)
		}
	}

	c.items[key] = &cacheItem{
		value:     value,
		expiresAt: now.Add(ttl),
	}

	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Ping always succeeds for the in-memory backend
func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory backend
func (c *MemoryCache) Close() error {
	return nil
}

// Size returns the number of entries in the cache (helper for tests)
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
