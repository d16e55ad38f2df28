package cache

import (
	"container/list"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LRUCache is a thread-safe least-recently-used cache with per-entry TTL and
// background cleanup of expired items.
type LRUCache struct {
	cacheData  map[string]*list.Element
	list       *list.List
	maxSize    int
	defaultTtl time.Duration
	mu         sync.RWMutex
	stopOnce   sync.Once
	stopChan   chan struct{}
}

// lruItem wraps the cache data with its key for efficient list operations.
type lruItem struct {
	key  string
	data CacheData
}

// NewLRUCache creates an LRU cache holding at most maxSize items, each living
// defaultTtlSeconds unless overridden. A background goroutine sweeps expired
// entries every 3 seconds until Stop is called.
func NewLRUCache(maxSize, defaultTtlSeconds int) *LRUCache {
	cache := &LRUCache{
		cacheData:  make(map[string]*list.Element),
		list:       list.New(),
		maxSize:    maxSize,
		defaultTtl: time.Duration(defaultTtlSeconds) * time.Second,
		stopChan:   make(chan struct{}),
	}

	go cache.cleanupExpiredKeys()

	return cache
}

func (c *LRUCache) cleanupExpiredKeys() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			expiredCount := 0

			for e := c.list.Front(); e != nil; {
				next := e.Next()
				item := e.Value.(*lruItem)

				if now.After(item.data.Timeout) {
					c.list.Remove(e)
					delete(c.cacheData, item.key)
					expiredCount++
				}
				e = next
			}

			if expiredCount > 0 {
				zap.L().
					Debug("Cleaned up expired LRU cache entries", zap.Int("count", expiredCount))
			}
			c.mu.Unlock()

		case <-c.stopChan:
			return
		}
	}
}

// Stop shuts down the background cleanup goroutine. Safe to call repeatedly.
func (c *LRUCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

// Set adds a key-value pair with the default TTL.
func (c *LRUCache) Set(key string, value any) {
	c.SetWithTTL(key, value, int(c.defaultTtl.Seconds()))
}

// SetWithTTL adds a key-value pair with a custom TTL. When the cache is full
// the least recently used item is evicted.
func (c *LRUCache) SetWithTTL(key string, value any, ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.cacheData[key]; exists {
		item := element.Value.(*lruItem)
		item.data.Value = value
		item.data.Timeout = time.Now().Add(time.Duration(ttlSeconds) * time.Second)

		c.list.MoveToBack(element)
		return
	}

	if c.list.Len() >= c.maxSize {
		oldest := c.list.Front()
		if oldest != nil {
			oldestItem := oldest.Value.(*lruItem)
			c.list.Remove(oldest)
			delete(c.cacheData, oldestItem.key)
			zap.L().
				Debug("LRU cache evicted least recently used item", zap.String("key", oldestItem.key))
		}
	}

	item := &lruItem{
		key: key,
		data: CacheData{
			Value:   value,
			Timeout: time.Now().Add(time.Duration(ttlSeconds) * time.Second),
		},
	}

	element := c.list.PushBack(item)
	c.cacheData[key] = element
}

// Get retrieves a value and marks it most recently used. Expired entries are
// removed on access.
func (c *LRUCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, exists := c.cacheData[key]
	if !exists {
		return nil, false
	}

	item := element.Value.(*lruItem)

	if time.Now().After(item.data.Timeout) {
		c.list.Remove(element)
		delete(c.cacheData, key)
		return nil, false
	}

	c.list.MoveToBack(element)

	return item.data.Value, true
}

// Delete removes a key from the cache.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.cacheData[key]; exists {
		c.list.Remove(element)
		delete(c.cacheData, key)
	}
}

// Size returns the current number of items in the cache, including expired
// items not yet swept.
func (c *LRUCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

// Clear removes all items from the cache. The cleanup goroutine keeps running.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.cacheData = make(map[string]*list.Element)
}
