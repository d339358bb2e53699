// Package cache is a small TTL cache for boundary lookups, currently
// checkout session details. Values are stored serialized so callers get
// their own copy back.
package cache

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type entry struct {
	data    []byte
	expires int64
}

// Cache maps string keys to serialized values with a fixed TTL. Safe for
// concurrent use. Expired entries are dropped lazily on read.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
}

// New returns an empty cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		items: make(map[string]entry),
		ttl:   ttl,
	}
}

// Set serializes value and stores it under key.
func (c *Cache) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		data:    data,
		expires: time.Now().Add(c.ttl).UnixNano(),
	}
	return nil
}

// Get deserializes the entry under key into target. It reports false
// when the key is missing or expired.
func (c *Cache) Get(key string, target interface{}) (bool, error) {
	c.mu.RLock()
	e, found := c.items[key]
	c.mu.RUnlock()

	if !found {
		return false, nil
	}
	if time.Now().UnixNano() > e.expires {
		c.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(e.data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the entry under key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len returns the number of stored entries, including any not yet
// dropped after expiry.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
