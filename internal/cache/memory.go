package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps extracted document text in process memory for the
// lifetime of one run. Safe for concurrent use by batch workers.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache. defaultTTL applies to entries set
// with a non-positive TTL; expired entries are evicted every cleanupInterval.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves the cached text for key
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores text under key. A TTL of 0 falls back to the default TTL;
// the layered cache relies on this when promoting disk hits.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes the entry for key
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear drops every entry
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
