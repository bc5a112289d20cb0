// Package cache provides a small in-process response cache with per-entry
// TTLs. It is used to throttle expensive aggregate fetches against the
// broadcast guide; entries are evicted lazily on read, never swept.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value  V
	expiry time.Time
}

// TTL is a string-keyed cache whose entries expire after a per-entry
// duration. The zero value is not usable; construct with New.
//
// Concurrent misses on the same key may each invoke their producer. The
// producers used here are idempotent reads, so the duplicate work is
// accepted rather than guarded against.
type TTL[V any] struct {
	entries map[string]entry[V]
	mu      sync.RWMutex
	now     func() time.Time
}

func New[V any]() *TTL[V] {
	return &TTL[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// GetOrCompute returns the cached value for key if present and unexpired,
// otherwise calls produce, stores its result for ttl, and returns it. A
// produce error is returned as-is and nothing is cached.
func (c *TTL[V]) GetOrCompute(key string, ttl time.Duration, produce func() (V, error)) (V, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.RUnlock()

	if ok && e.expiry.After(now) {
		return e.value, nil
	}

	value, err := produce()
	if err != nil {
		return value, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiry: now.Add(ttl)}
	c.mu.Unlock()

	return value, nil
}

// Get returns the cached value for key if present and unexpired. Expired
// entries are deleted on the way out.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if !e.expiry.After(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key for ttl, overwriting any previous entry.
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiry: c.now().Add(ttl)}
}

// Invalidate removes every entry whose key contains pattern. An empty
// pattern clears the whole cache.
func (c *TTL[V]) Invalidate(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "" {
		c.entries = make(map[string]entry[V])
		return
	}

	for k := range c.entries {
		if strings.Contains(k, pattern) {
			delete(c.entries, k)
		}
	}
}

func (c *TTL[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
