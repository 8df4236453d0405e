// Package cache provides the in-memory store for completed analyses, keyed by
// content hash. It is bounded by capacity with LRU eviction and optionally by
// TTL, and is safe for concurrent use.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/ChiragAJain/Placement-Assistant/internal/models"
)

type entry struct {
	key      string
	result   models.AnalysisResult
	storedAt time.Time
}

type Cache struct {
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

// New creates a cache holding at most capacity entries. A ttl of zero
// disables expiry; entries then live until evicted or the process exits.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the stored result for key, if present and not expired.
func (c *Cache) Get(key string) (models.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.ttl > 0 && time.Since(ent.storedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return ent.result, true
}

// Set inserts or overwrites the result for key, evicting the least recently
// used entry when the cache is full. Writes for the same key are idempotent,
// so two requests racing on a miss both storing the same value is harmless.
func (c *Cache) Set(key string, result models.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry)
		ent.result = result
		ent.storedAt = time.Now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&entry{
		key:      key,
		result:   result,
		storedAt: time.Now(),
	})
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
