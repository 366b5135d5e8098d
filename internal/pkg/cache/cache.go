// Package cache wraps go-cache with typed access, hit/miss counters and debug
// logging so services do not repeat type assertions.
package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Metrics tracks cache performance
type Metrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// Cache is a named TTL cache holding values of one type. A zero TTL disables
// it: Get always misses and Set is a no-op.
type Cache[T any] struct {
	items  *gocache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// New creates a typed cache. Expired items are purged every 2*ttl.
func New[T any](ttl time.Duration, name string, logger *zap.Logger) *Cache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache[T]{
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
	if ttl > 0 {
		c.items = gocache.New(ttl, 2*ttl)
	}
	return c
}

// Enabled reports whether the cache stores anything.
func (c *Cache[T]) Enabled() bool { return c.items != nil }

// Get retrieves an unexpired item.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.Enabled() {
		return zero, false
	}

	raw, found := c.items.Get(key)
	if !found {
		c.misses.Add(1)
		c.logger.Debug("Cache miss", zap.String("cache", c.name), zap.String("key", key))
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		c.logger.Warn("Cache entry has unexpected type", zap.String("cache", c.name), zap.String("key", key))
		return zero, false
	}

	c.hits.Add(1)
	c.logger.Debug("Cache hit", zap.String("cache", c.name), zap.String("key", key))
	return value, true
}

// Set stores an item for the cache TTL.
func (c *Cache[T]) Set(key string, value T) {
	if !c.Enabled() {
		return
	}
	c.items.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)
	c.logger.Debug("Cache set", zap.String("cache", c.name), zap.String("key", key), zap.Duration("ttl", c.ttl))
}

// Flush drops every item.
func (c *Cache[T]) Flush() {
	if !c.Enabled() {
		return
	}
	c.items.Flush()
	c.logger.Info("Cache cleared", zap.String("cache", c.name))
}

// GetMetrics returns current cache metrics
func (c *Cache[T]) GetMetrics() Metrics {
	return Metrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}
