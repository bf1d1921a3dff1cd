package assignment

import (
	"sync"
	"time"
)

// definitionCache is a TTL-based in-memory cache for flag and test
// definitions, keyed by name. Uses sync.Map for lock-free reads on the
// evaluation hot path.
//
// Unlike a stale-while-revalidate cache, an expired entry is treated as a
// miss: gating decisions must never be based on a definition older than
// the TTL window, so expiry forces a synchronous refetch.
type definitionCache struct {
	store sync.Map // map[string]*cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	// value is the cached definition. A nil value is a negative entry:
	// the store was consulted and the name does not exist.
	value     any
	fetchedAt time.Time
}

func newDefinitionCache(ttl time.Duration) *definitionCache {
	return &definitionCache{ttl: ttl}
}

// get returns the cached definition and whether the entry is still fresh.
// A fresh negative entry returns (nil, true).
func (c *definitionCache) get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}

	entry := val.(*cacheEntry)
	if time.Since(entry.fetchedAt) >= c.ttl {
		return nil, false
	}

	return entry.value, true
}

// set stores a definition (or nil for known-missing) with the current time.
func (c *definitionCache) set(key string, value any) {
	c.store.Store(key, &cacheEntry{value: value, fetchedAt: time.Now()})
}

// invalidate drops an entry so the next read hits the store.
func (c *definitionCache) invalidate(key string) {
	c.store.Delete(key)
}
