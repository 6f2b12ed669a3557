// Package cache provides a generic, thread-safe LRU cache with load-through
// support.
//
// The cache evicts the least recently used entry once it holds more than its
// capacity. GetOrLoad computes missing values on demand and collapses
// concurrent loads of the same key into a single call, which makes it a good
// fit for memoizing expensive, deterministic work such as compiling a name
// pattern:
//
//	compiled := cache.New[string, *namegen.Generator](256)
//	gen, err := compiled.GetOrLoad(pattern, func() (*namegen.Generator, error) {
//		return namegen.Compile(pattern)
//	})
//
// Failed loads are not cached. Stats reports hit, miss and eviction counts.
package cache
