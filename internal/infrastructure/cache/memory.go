package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// cacheItem is a stored result with an optional expiration.
type cacheItem struct {
	products []domain.Product
	storedAt time.Time
}

// MemoryCache is a thread-safe in-memory result cache. With a zero TTL,
// the default, entries never expire: the catalog is static for the
// process lifetime so results cannot go stale, and the key space
// (dirt type x severity x location) is small enough that unbounded
// growth is not a concern. Slices are copied across the cache boundary
// in both directions so callers can never mutate a cached result.
type MemoryCache struct {
	data  map[string]cacheItem
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewMemoryCache creates a memory cache. ttl <= 0 disables expiration;
// with a positive ttl a janitor goroutine sweeps expired entries every
// ten minutes, mirroring expiring-cache behavior for deployments that
// want it.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}
	if ttl > 0 {
		go c.cleanupExpired()
	}
	return c
}

// Get retrieves a cached result. Returns domain.ErrCacheMiss when the
// key is absent or expired.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || c.expired(item, time.Now()) {
		return nil, domain.ErrCacheMiss
	}
	return append([]domain.Product(nil), item.products...), nil
}

// Set stores a result under key, replacing any previous value.
func (c *MemoryCache) Set(ctx context.Context, key string, products []domain.Product) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		products: append([]domain.Product(nil), products...),
		storedAt: time.Now(),
	}
	return nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheItem)
	return nil
}

// Size returns the current number of cached results.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCache) expired(item cacheItem, now time.Time) bool {
	return c.ttl > 0 && now.After(item.storedAt.Add(c.ttl))
}

// cleanupExpired sweeps expired entries periodically. Only started when
// a positive TTL is configured.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mutex.Lock()
		for key, item := range c.data {
			if c.expired(item, now) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
