// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package calc

import "sync"

// Cache is a generic memoization cache. The caller owns the cache and
// decides its lifetime; wrapped functions only borrow it. Safe for
// concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// GetOrCompute returns the cached value for key, computing and storing it
// on first use. The lock is not held during compute, so a recursive
// compute may consult the cache; concurrent first calls may compute twice
// and the last store wins.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Put(key, v)
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every cached entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V)
}

// Memoize wraps fn so repeated calls with the same argument reuse the
// result stored in cache.
func Memoize[K comparable, V any](cache *Cache[K, V], fn func(K) V) func(K) V {
	return func(key K) V {
		return cache.GetOrCompute(key, func() V { return fn(key) })
	}
}
