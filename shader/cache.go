package shader

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// DefaultCacheSize is the number of compiled modules a Loader keeps.
const DefaultCacheSize = 64

// cacheKey identifies one compiled source.
type cacheKey struct {
	name string
	hash uint64
}

func newCacheKey(name, source string) cacheKey {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source)) // fnv.Write never returns an error
	return cacheKey{name: name, hash: h.Sum64()}
}

type cacheEntry struct {
	key    cacheKey
	module *Module
}

// moduleCache is a mutex-protected LRU of compiled modules.
type moduleCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*list.Element
	order    *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func newModuleCache(capacity int) *moduleCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &moduleCache{
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element),
		order:    list.New(),
	}
}

func (c *moduleCache) get(k cacheKey) (*Module, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[k]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.order.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*cacheEntry).module, true
}

func (c *moduleCache) put(k cacheKey, m *Module) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[k]; ok {
		el.Value.(*cacheEntry).module = m
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.evictions.Add(1)
	}

	c.entries[k] = c.order.PushFront(&cacheEntry{key: k, module: m})
}

func (c *moduleCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *moduleCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*list.Element)
	c.order.Init()
}

// CacheStats reports loader cache activity.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (c *moduleCache) stats() CacheStats {
	return CacheStats{
		Len:       c.len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
