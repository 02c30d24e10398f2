// Package cache provides a generic, thread-safe LRU cache with a fixed
// capacity. It is used to bound memoization of pure but non-trivial
// computations, such as user-agent parsing.
package cache
