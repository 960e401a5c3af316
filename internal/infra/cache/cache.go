// Package cache provides a small in-memory TTL cache. The account workflows
// use it for short-lived summary snapshots between refreshes.
package cache

import (
	"sync"
	"time"
)

type item[T any] struct {
	value    T
	deadline time.Time
}

// InMemory is a thread-safe TTL cache. Every entry shares the one TTL the
// cache was created with.
type InMemory[T any] struct {
	mu    sync.RWMutex
	items map[string]item[T]
	ttl   time.Duration
}

// New creates a cache whose entries expire ttl after each Set. A background
// sweeper reclaims expired entries so an idle cache does not grow.
func New[T any](ttl time.Duration) *InMemory[T] {
	c := &InMemory[T]{
		items: make(map[string]item[T]),
		ttl:   ttl,
	}
	go c.sweep()
	return c
}

// Get returns the live value for key. Expired entries read as absent even
// before the sweeper reaches them.
func (c *InMemory[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(it.deadline) {
		var zero T
		return zero, false
	}
	return it.value, true
}

// Set stores value under key with a fresh deadline.
func (c *InMemory[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[T]{value: value, deadline: time.Now().Add(c.ttl)}
}

// Delete drops key immediately; refresh paths use it to bust stale
// snapshots before re-fetching.
func (c *InMemory[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *InMemory[T]) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for k, it := range c.items {
			if now.After(it.deadline) {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
