// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: LRU memoization for Parse, grounded on the teacher pack's own use of
// hashicorp/golang-lru to wrap a hot lookup behind a typed, size-bounded
// cache (lib/containers/lru.go in the newbthenewbd-btrfs-rec example repo).
//
// DType strings are small and repeat heavily (the same handful of attribute
// and coordinate dtypes get parsed on every graph/rtree construction in a
// long-running process); 256 entries comfortably covers realistic schemas
// without unbounded growth.
package dtype

import lru "github.com/hashicorp/golang-lru/v2"

const parseCacheSize = 256

var parseCache = mustNewCache()

func mustNewCache() *lru.Cache[string, DType] {
	c, err := lru.New[string, DType](parseCacheSize)
	if err != nil {
		// Only returns an error for size <= 0, which parseCacheSize never is.
		panic(err)
	}

	return c
}
