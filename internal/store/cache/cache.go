// Package cache wraps a StateStore with a read-through LRU, cutting
// repeat reads of the same key during a single call (e.g. a swap reads
// the same PoolInfo record at both the quote and apply steps).
// Grounded on the teacher's LedgerCache, which wraps hashicorp/golang-lru
// the same way in front of its own ledger lookups.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dexcore/ledger/internal/store"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 512

// CachedStore wraps any StateStore with an LRU in front of Get. Writes
// and deletes go straight through to the underlying store and also
// invalidate (rather than update) the cache entry, so a Sandbox built on
// top of a CachedStore never serves stale data after its own writes.
type CachedStore struct {
	mu       sync.Mutex
	inner    store.StateStore
	entries  *lru.Cache[string, cacheEntry]
}

type cacheEntry struct {
	value []byte
	found bool
}

// New wraps inner with an LRU of the given size (DefaultSize if size <= 0).
func New(inner store.StateStore, size int) (*CachedStore, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, entries: entries}, nil
}

func (c *CachedStore) Get(key []byte) ([]byte, bool, error) {
	k := string(key)

	c.mu.Lock()
	if e, ok := c.entries.Get(k); ok {
		c.mu.Unlock()
		if !e.found {
			return nil, false, nil
		}
		return append([]byte(nil), e.value...), true, nil
	}
	c.mu.Unlock()

	v, found, err := c.inner.Get(key)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.entries.Add(k, cacheEntry{value: v, found: found})
	c.mu.Unlock()

	return v, found, nil
}

func (c *CachedStore) Set(key []byte, value []byte) error {
	if err := c.inner.Set(key, value); err != nil {
		return err
	}
	c.mu.Lock()
	c.entries.Remove(string(key))
	c.mu.Unlock()
	return nil
}

func (c *CachedStore) Delete(key []byte) error {
	if err := c.inner.Delete(key); err != nil {
		return err
	}
	c.mu.Lock()
	c.entries.Remove(string(key))
	c.mu.Unlock()
	return nil
}

func (c *CachedStore) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	return c.inner.Iterate(prefix, fn)
}
