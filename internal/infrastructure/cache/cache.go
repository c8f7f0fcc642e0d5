package cache

import (
	"sync"
	"time"
)

// Item is a cached value with an expiration timestamp.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache. The catalogs (vragen, zorgtaken) are
// read on every bot message and every report, so they are cached here instead
// of hitting Postgres each time.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New creates a cache and starts a background sweep of expired items.
func New() *Cache {
	cache := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set stores a value under key for the given duration.
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns the value for key and whether it was present and fresh.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// GetOrLoad returns the cached value for key, or loads and caches it.
func (c *Cache) GetOrLoad(key string, duration time.Duration, load func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	c.Set(key, v, duration)

	return v, nil
}

// Delete removes an item.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired removes all expired items.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear empties the cache; the seed endpoint calls this after a reseed.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}
