package internal

import (
	"context"
	"strings"
	"sync"
)

// SplitCacheStore is the optional persistent backing an embedder may attach
// to the process-wide split cache (SPEC_FULL §4.13). It is consulted after
// the in-memory map misses and populated when both it and the in-memory map
// miss, so a
// restart can warm-start from durable storage. A nil store (the default)
// means the split cache is purely in-memory, which is sufficient for
// correctness per spec §4.8 — nothing in this package depends on the store
// being present.
type SplitCacheStore interface {
	Get(ctx context.Context, haystack, sep string) ([]string, bool, error)
	Put(ctx context.Context, haystack, sep string, parts []string) error
}

type splitCacheKey struct {
	haystack string
	sep      string
}

// splitCache is the process-wide, thread-safe cache of split results (spec
// §4.8). Grounded on the same RWMutex+map shape as regexCache above and the
// teacher's prompty.cache.results.go; unlike that teacher cache it has no
// eviction list because split results are small and spec §4.8 treats an
// upper bound as an implementation choice, not a requirement.
type splitCache struct {
	mu    sync.RWMutex
	m     map[splitCacheKey][]string
	store SplitCacheStore
}

var globalSplitCache = &splitCache{m: make(map[splitCacheKey][]string)}

// SetSplitCacheStore attaches (or detaches, with store==nil) the persistent
// backing for the process-wide split cache.
func SetSplitCacheStore(store SplitCacheStore) {
	globalSplitCache.mu.Lock()
	globalSplitCache.store = store
	globalSplitCache.mu.Unlock()
}

// cachedSplit returns strings.Split(haystack, sep), consulting the in-memory
// cache and then the optional persistent store before falling back to
// strings.Split itself. hit reports whether the in-memory cache or the
// persistent store was the source (used only for debug cache-hit/cache-miss
// events).
func cachedSplit(ctx context.Context, haystack, sep string) (parts []string, hit bool) {
	key := splitCacheKey{haystack: haystack, sep: sep}

	globalSplitCache.mu.RLock()
	parts, ok := globalSplitCache.m[key]
	store := globalSplitCache.store
	globalSplitCache.mu.RUnlock()
	if ok {
		return parts, true
	}

	if store != nil {
		if fromStore, found, err := store.Get(ctx, haystack, sep); err == nil && found {
			globalSplitCache.mu.Lock()
			globalSplitCache.m[key] = fromStore
			globalSplitCache.mu.Unlock()
			return fromStore, true
		}
	}

	parts = strings.Split(haystack, sep)
	globalSplitCache.mu.Lock()
	globalSplitCache.m[key] = parts
	globalSplitCache.mu.Unlock()
	if store != nil {
		_ = store.Put(ctx, haystack, sep, parts)
	}
	return parts, false
}
