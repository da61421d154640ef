// Package cache provides a byte-budgeted frame cache for interactive
// rendering.
//
// Rendered frames are large (a 1024x768 RGBA frame is 3 MiB), so the
// cache bounds memory rather than entry count: each entry is measured
// by a caller-provided sizer and the least recently used entries are
// evicted once a shard exceeds its share of the byte budget.
//
//	frames := cache.New[string, []byte](64<<20, cache.StringHasher,
//		func(b []byte) int { return len(b) })
//	frames.GetOrCreate(key, render)
//
// The cache is sharded 16 ways to keep lock contention low when
// renders and lookups happen concurrently. It is safe for concurrent
// use and must not be copied after creation.
package cache
