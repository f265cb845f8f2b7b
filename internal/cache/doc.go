// Package cache provides the bounded LRU cache used to memoize convolution
// kernels across blur calls.
//
//	c := cache.New[uint64, []float64](64)
//	weights := c.GetOrCreate(key, func() []float64 { return build(radius) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
