// Package cache provides the read cache used for job listings, with a choice
// of an in-process LRU or a shared Redis backend. Values are opaque byte
// slices; callers own (de)serialization.
package cache

import (
	"time"

	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/config"
)

// Cache is the common interface for all cache implementations.
type Cache interface {
	// Get retrieves an item from the cache by its key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// Set adds a key-value pair to the cache with the default TTL.
	Set(key string, value any)

	// SetWithTTL adds a key-value pair with a custom TTL in seconds.
	SetWithTTL(key string, value any, ttlSeconds int)

	// Delete removes a key from the cache.
	Delete(key string)

	// Size returns the current number of items in the cache.
	Size() int

	// Clear removes all items from the cache.
	Clear()

	// Stop shuts down any background work owned by the cache.
	Stop()
}

// CacheData is one cache entry: a value and its expiration timestamp.
type CacheData struct {
	Value   any
	Timeout time.Time
}

// NewCache creates a cache instance based on the configuration:
//   - "LRU": in-process least-recently-used cache
//   - "REDIS": shared Redis-backed cache
//   - anything else falls back to LRU
func NewCache(cfg config.CacheConfig, redisCfg config.RedisConfig) Cache {
	switch cfg.Type {
	case "REDIS":
		client := NewRedisClient(redisCfg)
		if client == nil {
			zap.L().Warn("Redis unavailable, falling back to LRU cache")
			return NewLRUCache(cfg.Capacity, cfg.DefaultTTL)
		}
		return NewRedisCache(client, "skillwaves:", cfg.DefaultTTL)
	case "LRU":
		return NewLRUCache(cfg.Capacity, cfg.DefaultTTL)
	default:
		return NewLRUCache(cfg.Capacity, cfg.DefaultTTL)
	}
}
