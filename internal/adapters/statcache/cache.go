// Package statcache memoizes filesystem metadata for the duration of a refresh pass.
package statcache

import (
	"os"
	"sync"
	"unique"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
)

var _ ports.StatCache = (*Cache)(nil)

type entry struct {
	meta domain.FileMeta
	ok   bool
}

// Cache implements ports.StatCache on top of os.Stat.
// Failed lookups are memoized as well, so a missing file costs one syscall per pass.
type Cache struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]]entry
	stat    func(string) (os.FileInfo, error)
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[unique.Handle[string]]entry),
		stat:    os.Stat,
	}
}

// Stat returns the metadata for path.
func (c *Cache) Stat(path string) (domain.FileMeta, bool) {
	key := unique.Make(path)

	c.mu.RLock()
	e, hit := c.entries[key]
	c.mu.RUnlock()
	if hit {
		return e.meta, e.ok
	}

	info, err := c.stat(path)
	if err == nil {
		e = entry{meta: domain.FileMetaFrom(info), ok: true}
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()

	return e.meta, e.ok
}

// Clear drops every memoized entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of memoized paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
