package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount must be a power of 2 for fast shard selection via
	// bitwise AND.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultBudget is the total byte budget when New is given a
	// non-positive one: 64 MiB, about twenty 1024x768 RGBA frames.
	DefaultBudget = 64 << 20
)

// Hasher computes the shard hash for a key.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sizer reports the memory cost of a value in bytes. It is called once
// per insertion, so it may be as simple as len.
type Sizer[V any] func(V) int

// Cache is a sharded LRU cache bounded by the total bytes of its
// values. Keys hash to one of 16 shards, each with its own lock and an
// equal share of the byte budget; the least recently used entries of a
// shard are evicted when an insertion pushes it over that share.
//
// Cache is safe for concurrent use and must not be copied after
// creation.
type Cache[K comparable, V any] struct {
	shards [shardCount]*shard[K, V]
	hasher Hasher[K]
	sizer  Sizer[V]
	budget int // bytes per shard

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
	bytes   int
}

type entry[K comparable, V any] struct {
	value V
	size  int
	node  *lruNode[K]
}

// New creates a cache holding at most budget bytes of values in total,
// measured by sizer. budget <= 0 selects DefaultBudget.
//
// A value larger than a whole shard's share is still cached; it simply
// evicts everything else in its shard. Entries never block insertion.
func New[K comparable, V any](budget int, hasher Hasher[K], sizer Sizer[V]) *Cache[K, V] {
	if budget <= 0 {
		budget = DefaultBudget
	}
	perShard := budget / shardCount
	if perShard < 1 {
		perShard = 1
	}
	c := &Cache[K, V]{
		hasher: hasher,
		sizer:  sizer,
		budget: perShard,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     newLRUList[K](),
		}
	}
	return c
}

func (c *Cache[K, V]) getShard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key. On a hit the entry becomes the
// most recently used in its shard.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	sh := c.getShard(key)

	// Fast path: read lock to check existence.
	sh.mu.RLock()
	_, exists := sh.entries[key]
	sh.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	// Write lock for the LRU update; re-check, the entry may have been
	// evicted between the locks.
	sh.mu.Lock()
	e, ok := sh.entries[key]
	if !ok {
		sh.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	sh.lru.MoveToFront(e.node)
	value := e.value
	sh.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value, replacing any previous entry for the key. The
// value is stored as-is, not copied; callers must not modify it after
// caching.
func (c *Cache[K, V]) Set(key K, value V) {
	size := c.sizer(value)
	sh := c.getShard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e, ok := sh.entries[key]; ok {
		sh.bytes += size - e.size
		e.value = value
		e.size = size
		sh.lru.MoveToFront(e.node)
		c.evict(sh)
		return
	}

	node := sh.lru.PushFront(key)
	sh.entries[key] = &entry[K, V]{value: value, size: size, node: node}
	sh.bytes += size
	c.evict(sh)
}

// GetOrCreate returns the cached value or creates and caches it. The
// create function runs with the shard lock held, so concurrent callers
// with the same key compute the value once; keep create bounded.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	sh := c.getShard(key)

	// Fast path: read lock to check existence.
	sh.mu.RLock()
	_, exists := sh.entries[key]
	sh.mu.RUnlock()

	if exists {
		sh.mu.Lock()
		if e, ok := sh.entries[key]; ok {
			sh.lru.MoveToFront(e.node)
			value := e.value
			sh.mu.Unlock()
			c.hits.Add(1)
			return value
		}
		sh.mu.Unlock()
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	// Re-check after acquiring the write lock.
	if e, ok := sh.entries[key]; ok {
		sh.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := create()
	size := c.sizer(value)

	node := sh.lru.PushFront(key)
	sh.entries[key] = &entry[K, V]{value: value, size: size, node: node}
	sh.bytes += size
	c.evict(sh)
	return value
}

// evict removes least recently used entries until the shard is within
// its byte share. The most recent entry always survives, so one
// oversized value does not make the cache refuse to hold anything.
// Caller must hold sh.mu.
func (c *Cache[K, V]) evict(sh *shard[K, V]) {
	for sh.bytes > c.budget && sh.lru.Len() > 1 {
		key, ok := sh.lru.RemoveOldest()
		if !ok {
			return
		}
		if e, ok := sh.entries[key]; ok {
			sh.bytes -= e.size
			delete(sh.entries, key)
			c.evictions.Add(1)
		}
	}
}

// Delete removes an entry. Reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	sh := c.getShard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[key]
	if !ok {
		return false
	}
	sh.lru.Remove(e.node)
	sh.bytes -= e.size
	delete(sh.entries, key)
	return true
}

// Clear removes all entries from every shard.
func (c *Cache[K, V]) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.entries = make(map[K]*entry[K, V])
		sh.lru.Clear()
		sh.bytes = 0
		sh.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// Bytes returns the total value bytes currently held.
func (c *Cache[K, V]) Bytes() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += sh.bytes
		sh.mu.RUnlock()
	}
	return total
}

// Stats contains point-in-time cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Bytes is the total value bytes currently held.
	Bytes int
	// Budget is the effective total byte budget across shards.
	Budget int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Evictions is the number of entries evicted over budget.
	Evictions uint64
}

// Stats returns current cache statistics. Counters are read atomically;
// Len and Bytes take each shard lock briefly.
func (c *Cache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Bytes:     c.Bytes(),
		Budget:    c.budget * shardCount,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}
