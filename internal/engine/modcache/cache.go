// Package modcache implements the process-wide module cache.
package modcache

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.ModuleCache = (*Cache)(nil)

// entry is the cached parse of a single file.
type entry struct {
	handle domain.ModuleHandle
	// modTime is the newest of the file's and its includes' modification
	// times at parse time.
	modTime time.Time
	digest  uint64
}

// Cache implements ports.ModuleCache. It owns every module it parses; callers
// only ever see handles.
type Cache struct {
	stat      ports.StatCache
	parser    ports.Parser
	externals ports.ExternalsResolver
	logger    ports.Logger

	readFile func(string) ([]byte, error)
	group    singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
	version uint64
	parses  uint64
}

// New creates an empty Cache.
func New(
	stat ports.StatCache,
	parser ports.Parser,
	externals ports.ExternalsResolver,
	logger ports.Logger,
) *Cache {
	return &Cache{
		stat:      stat,
		parser:    parser,
		externals: externals,
		logger:    logger,
		readFile:  os.ReadFile,
		entries:   make(map[string]entry),
	}
}

// IsCached reports whether path has an entry, stale or not.
func (c *Cache) IsCached(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[path]
	return ok
}

// Lookup returns the handle of the cached module without reparsing.
func (c *Cache) Lookup(path string) domain.ModuleHandle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[path]; ok {
		return e.handle
	}
	return domain.ModuleHandle{}
}

// Paths returns the cached paths, sorted.
func (c *Cache) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Parses returns how many successful parses the cache has performed.
func (c *Cache) Parses() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parses
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

type result struct {
	modTime time.Time
	handle  domain.ModuleHandle
}

// Evaluate brings the entry for path up to date and returns the newest
// observed modification time with the current handle.
//
// Relative paths are never cached and yield the zero time. A path that does
// not exist yields the zero time and the last good handle, if any.
func (c *Cache) Evaluate(path string) (time.Time, domain.ModuleHandle) {
	if !filepath.IsAbs(path) {
		return time.Time{}, domain.ModuleHandle{}
	}

	v, _, _ := c.group.Do(path, func() (any, error) {
		return c.evaluate(path), nil
	})
	res := v.(result) //nolint:forcetypeassert // evaluate always returns result
	return res.modTime, res.handle
}

func (c *Cache) evaluate(path string) result {
	meta, ok := c.stat.Stat(path)
	if !ok {
		return result{handle: c.Lookup(path)}
	}

	c.mu.RLock()
	old, cached := c.entries[path]
	c.mu.RUnlock()

	fileChanged := !cached || meta.ModTime.After(old.modTime)
	includesChanged := false
	if cached {
		includesChanged = c.externals.IncludesChanged(old.handle.Module()).After(old.modTime)
	}
	if !fileChanged && !includesChanged {
		return result{modTime: old.modTime, handle: old.handle}
	}

	src, err := c.readFile(path)
	if err != nil {
		c.logger.Debug(zerr.With(zerr.Wrap(err, domain.ErrModuleReadFailed.Error()), "path", path).Error())
		return result{modTime: meta.ModTime, handle: c.Lookup(path)}
	}

	digest := xxhash.Sum64(src)
	if cached && !includesChanged && old.digest == digest {
		// Touched but unchanged: keep the parse, remember the new time.
		old.modTime = meta.ModTime
		c.mu.Lock()
		c.entries[path] = old
		c.mu.Unlock()
		return result{modTime: meta.ModTime, handle: old.handle}
	}

	m, err := c.parser.Parse(src, path, false)
	if err != nil {
		c.logger.Debug(err.Error())
		return result{modTime: meta.ModTime, handle: c.Lookup(path)}
	}

	c.externals.ResolveExternals(m)
	modTime := domain.Latest(meta.ModTime, c.externals.IncludesChanged(m))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.version++
	c.parses++
	handle := domain.NewModuleHandle(m, c.version)
	c.entries[path] = entry{handle: handle, modTime: modTime, digest: digest}

	c.logger.Debug(fmt.Sprintf("parsed %s (version %d)", path, c.version))
	return result{modTime: modTime, handle: handle}
}
