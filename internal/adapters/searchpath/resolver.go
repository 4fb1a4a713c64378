// Package searchpath resolves referenced filenames against the module
// directory and the configured library paths.
package searchpath

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/modcache/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver.
type Resolver struct {
	libraryPaths []string
}

// NewResolver creates a Resolver that falls back to libraryPaths, in order.
func NewResolver(libraryPaths []string) *Resolver {
	return &Resolver{libraryPaths: slices.Clone(libraryPaths)}
}

// FindValidPath resolves filename.
//
// Absolute names are accepted as-is when valid. Relative names are tried
// against base first, then against every library path. A candidate is valid
// when it exists and is not a directory. Results are canonical absolute paths.
func (r *Resolver) FindValidPath(base, filename string) string {
	if filename == "" {
		return ""
	}

	if filepath.IsAbs(filename) {
		return canonical(filename)
	}

	if base != "" {
		if p := canonical(filepath.Join(base, filename)); p != "" {
			return p
		}
	}

	return r.searchLibs(filename)
}

// LibraryPaths returns the configured library paths.
func (r *Resolver) LibraryPaths() []string {
	return slices.Clone(r.libraryPaths)
}

func (r *Resolver) searchLibs(filename string) string {
	for _, lib := range r.libraryPaths {
		if p := canonical(filepath.Join(lib, filename)); p != "" {
			return p
		}
	}
	return ""
}

// canonical returns the absolute, symlink-free form of path if it names an
// existing non-directory, and "" otherwise.
func canonical(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
