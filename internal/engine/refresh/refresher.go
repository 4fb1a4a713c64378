// Package refresh implements the dependency refresh of a module's deferred
// references.
package refresh

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyHandler = (*Refresher)(nil)

// Refresher implements ports.DependencyHandler on top of the module cache.
type Refresher struct {
	cache  ports.ModuleCache
	paths  ports.PathResolver
	logger ports.Logger

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewRefresher creates a new Refresher.
func NewRefresher(cache ports.ModuleCache, paths ports.PathResolver, logger ports.Logger) *Refresher {
	return &Refresher{
		cache:    cache,
		paths:    paths,
		logger:   logger,
		reported: make(map[string]struct{}),
	}
}

type rename struct {
	from string
	to   string
}

// HandleDependencies brings every deferred dependency of m up to date and
// returns the newest modification time found in the subtree, or the zero time.
//
// Relative keys that now resolve are promoted to their absolute path once the
// walk is done. A promoted key is never demoted again. Calling it on a module
// whose refresh is already in progress returns the zero time.
func (r *Refresher) HandleDependencies(m *domain.FileModule) time.Time {
	release, ok := m.EnterRefresh()
	if !ok {
		return time.Time{}
	}
	defer release()

	var latest time.Time
	var renames []rename

	for key := range m.UseIndex() {
		path := key
		wasMissing := false

		if !filepath.IsAbs(key) {
			wasMissing = true
			path = r.paths.FindValidPath(m.Path, key)
			if path == "" {
				r.logger.Debug(fmt.Sprintf("  %s: not found", key))
				continue
			}
			renames = append(renames, rename{from: key, to: path})
		}

		latest = domain.Latest(latest, r.refresh(path, wasMissing))
	}

	for _, rn := range renames {
		m.PromoteUse(rn.from, rn.to)
	}

	for _, inc := range m.Inclusions() {
		latest = domain.Latest(latest, r.HandleDependencies(inc.Module))
	}

	return latest
}

// refresh evaluates a single absolute dependency and folds in its own subtree.
func (r *Refresher) refresh(path string, wasMissing bool) time.Time {
	wasCached := r.cache.IsCached(path)
	old := r.cache.Lookup(path)
	mtime, handle := r.cache.Evaluate(path)

	switch {
	case handle.Valid() && !handle.Same(old):
		r.logger.Debug(fmt.Sprintf("  %s: v%d -> v%d", path, old.Version(), handle.Version()))
	case mtime.IsZero():
		r.logger.Debug(fmt.Sprintf("  %s: not found", path))
	default:
		r.logger.Debug(fmt.Sprintf("  %s: v%d", path, old.Version()))
	}

	if !handle.Valid() && !wasCached && !wasMissing {
		r.reportCompileFailure(path)
	}
	if !handle.Valid() {
		return mtime
	}

	r.mu.Lock()
	delete(r.reported, path)
	r.mu.Unlock()

	return domain.Latest(mtime, r.HandleDependencies(handle.Module()))
}

// reportCompileFailure warns once per path until the library compiles.
func (r *Refresher) reportCompileFailure(path string) {
	r.mu.Lock()
	_, seen := r.reported[path]
	r.reported[path] = struct{}{}
	r.mu.Unlock()

	if seen {
		return
	}
	r.logger.Warn(zerr.With(domain.ErrLibraryCompileFailed, "path", path).Error())
}
