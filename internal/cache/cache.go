// Package cache provides a small generic store with a soft entry
// limit, used for size-keyed rendered-image caches.
//
// The pipeline owns one cache per layer plus one for the final
// composite. Entries are keyed by concrete render size; invalidation
// is handled by the owner (caches are cleared wholesale when layer
// state changes), so the cache itself only bounds memory.
package cache

import "sync"

// Cache is a generic thread-safe store with a soft limit.
// When the cache exceeds softLimit, the least recently used entries
// are evicted.
//
// Cache is safe for concurrent use, so callers may render independent
// sizes in parallel. Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// Set stores a value in the cache.
// If the cache exceeds softLimit after insertion, the oldest entry is
// evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictOldest removes the entry with the smallest access time.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	var oldestKey K
	oldestTime := int64(-1)
	for k, e := range c.entries {
		if oldestTime < 0 || e.atime < oldestTime {
			oldestKey = k
			oldestTime = e.atime
		}
	}
	if oldestTime >= 0 {
		delete(c.entries, oldestKey)
	}
}
