// Package cache memoizes raw directory fetches per department key under a TTL
package cache

import (
	"sync"
	"time"

	"staffdir/internal/core/directory"
)

// DefaultTTL is how long a fetched department set stays fresh
const DefaultTTL = 5 * time.Minute

type entry struct {
	raw      []directory.RawEmployee
	storedAt time.Time
}

// Cache is a mutex guarded TTL memo keyed by department code (or "all").
// Entries hold raw records so hits still flow through the normalize pipeline.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New builds a cache; ttl <= 0 falls back to DefaultTTL
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetNow swaps the clock, tests only
func (c *Cache) SetNow(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached records for key, missing when absent or expired
// expired entries are evicted lazily here
func (c *Cache) Get(key string) ([]directory.RawEmployee, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.raw, true
}

// Put stores records for key with the current timestamp
func (c *Cache) Put(key string, raw []directory.RawEmployee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{raw: raw, storedAt: c.now()}
}

// Drop evicts key immediately, forcing the next Get to miss
func (c *Cache) Drop(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// TTL reports the configured lifetime
func (c *Cache) TTL() time.Duration { return c.ttl }
