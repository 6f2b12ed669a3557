package cache

import (
	"container/list"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

type item[K comparable, V any] struct {
	key   K
	value V
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to run for every entry dropped because of
// capacity or Purge. It is called with the cache lock held and must not call
// back into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// LRU is a fixed-capacity cache with least-recently-used eviction.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front is most recent
	onEvict  func(key K, value V)

	flight singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates an LRU holding at most capacity entries. It panics if capacity
// is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*item[K, V]).value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Add stores value under key and reports whether an older entry was evicted
// to make room.
func (c *LRU[K, V]) Add(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*item[K, V]).value = value
		c.order.MoveToFront(el)
		return false
	}

	c.items[key] = c.order.PushFront(&item[K, V]{key: key, value: value})
	if c.order.Len() <= c.capacity {
		return false
	}
	if oldest := c.order.Back(); oldest != nil {
		c.drop(oldest, true)
	}
	return true
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Concurrent misses for the same key share one load call. The returned bool
// is true when the value came from the cache.
func (c *LRU[K, V]) GetOrLoad(key K, load func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := c.flight.Do(fmt.Sprint(key), func() (any, error) {
		// Another caller may have stored it between Get and Do.
		c.mu.Lock()
		if el, ok := c.items[key]; ok {
			c.mu.Unlock()
			return el.Value.(*item[K, V]).value, nil
		}
		c.mu.Unlock()

		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

// Remove deletes key without invoking the evict callback.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	it := c.drop(el, false)
	return it.value, true
}

// Contains reports whether key is cached without touching its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge drops every entry, invoking the evict callback for each.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Back(); el != nil; el = c.order.Back() {
		c.drop(el, true)
	}
}

// Stats returns the current counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// drop must be called with c.mu held.
func (c *LRU[K, V]) drop(el *list.Element, evict bool) *item[K, V] {
	it := c.order.Remove(el).(*item[K, V])
	delete(c.items, it.key)
	if evict {
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(it.key, it.value)
		}
	}
	return it
}
