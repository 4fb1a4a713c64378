// Package fonts keeps track of font files referenced through use statements.
package fonts

import (
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/modcache/internal/core/ports"
)

var _ ports.FontRegistry = (*Registry)(nil)

// Registry implements ports.FontRegistry as an in-memory set of paths.
type Registry struct {
	mu     sync.RWMutex
	files  map[string]struct{}
	logger ports.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		files:  make(map[string]struct{}),
		logger: logger,
	}
}

// RegisterFontFile records path. Registering the same path twice is a no-op.
func (r *Registry) RegisterFontFile(path string) {
	r.mu.Lock()
	_, seen := r.files[path]
	r.files[path] = struct{}{}
	r.mu.Unlock()

	if !seen {
		r.logger.Debug(fmt.Sprintf("registered font file %s", path))
	}
}

// Files returns the registered font paths, sorted.
func (r *Registry) Files() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]string, 0, len(r.files))
	for f := range r.files {
		files = append(files, f)
	}
	slices.Sort(files)
	return files
}
