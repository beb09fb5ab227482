package cache

import (
	"sync"
	"time"

	"github.com/renewsite/site-analyzer/internal/analysis"
)

// entry holds one cached series and its expiry deadline.
type entry struct {
	series    analysis.YearSeries
	expiresAt time.Time
}

// TTLCache is a concurrency-safe in-memory cache of fetched year series,
// keyed by (lat, lon, year). Entries expire after a fixed time-to-live; there
// is no manual invalidation. The clock is injectable so expiry is testable.
type TTLCache struct {
	mu    sync.RWMutex
	data  map[string]entry
	ttl   time.Duration
	clock func() time.Time
}

// New creates a TTLCache. A ttl <= 0 disables caching entirely.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		data:  make(map[string]entry),
		ttl:   ttl,
		clock: time.Now,
	}
}

// SetClock overrides the cache clock (useful for testing expiry).
func (c *TTLCache) SetClock(clock func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
}

// Get returns the cached series for key if present and not expired.
func (c *TTLCache) Get(key string) (analysis.YearSeries, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	now := c.clock()
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.After(now) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have refreshed it.
		if e, ok = c.data[key]; ok && !e.expiresAt.After(c.clock()) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.series, true
}

// Set stores a series under key and sweeps any expired entries.
func (c *TTLCache) Set(key string, series analysis.YearSeries) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	c.data[key] = entry{series: series, expiresAt: now.Add(c.ttl)}

	for k, e := range c.data {
		if !e.expiresAt.After(now) {
			delete(c.data, k)
		}
	}
}

// Len reports the number of live entries.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	now := c.clock()
	for _, e := range c.data {
		if e.expiresAt.After(now) {
			n++
		}
	}
	return n
}
