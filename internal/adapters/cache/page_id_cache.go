package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// RistrettoPageIDCache remembers Notion page IDs per upsert key so repeat
// runs can patch directly instead of querying first. Misses are harmless;
// stale hits are evicted by the caller when a patch 404s.
type RistrettoPageIDCache struct {
	cache *ristretto.Cache
}

func NewPageIDCache(maxItems int64) (*RistrettoPageIDCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create page id cache failed: %w", err)
	}
	return &RistrettoPageIDCache{cache: c}, nil
}

func (c *RistrettoPageIDCache) Get(key string) (string, bool) {
	if v, ok := c.cache.Get(key); ok {
		id, ok := v.(string)
		return id, ok
	}
	return "", false
}

func (c *RistrettoPageIDCache) Set(key string, pageID string) {
	c.cache.Set(key, pageID, 1)
}

func (c *RistrettoPageIDCache) Del(key string) {
	c.cache.Del(key)
}

func (c *RistrettoPageIDCache) Close() { c.cache.Close() }
