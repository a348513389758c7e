package neo

import (
	"context"
	"sync"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
)

// Looker fetches a near-earth object by ID.
type Looker interface {
	Lookup(ctx context.Context, id string) (domain.NEO, error)
}

// CachedLooker wraps a Looker with an in-memory LRU cache. NEO orbital
// records change rarely, so lookups are cached for the process lifetime.
type CachedLooker struct {
	inner   Looker
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedLooker creates a cache decorator around a Looker.
func NewCachedLooker(inner Looker, maxEntries int, metrics *observability.Metrics) *CachedLooker {
	return &CachedLooker{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedLooker) Lookup(ctx context.Context, id string) (domain.NEO, error) {
	if n, ok := c.cache.get(id); ok {
		c.metrics.NEOCache.WithLabelValues("hit").Inc()
		return n, nil
	}
	c.metrics.NEOCache.WithLabelValues("miss").Inc()

	n, err := c.inner.Lookup(ctx, id)
	if err != nil {
		return n, err
	}
	c.cache.put(id, n)
	return n, nil
}

// lruCache is a simple thread-safe LRU cache keyed by NEO ID.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.NEO
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.NEO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.NEO{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.NEO) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
