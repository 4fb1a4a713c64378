package ports

import (
	"time"

	"go.trai.ch/modcache/internal/core/domain"
)

// ModuleCache owns every parsed library module, keyed by absolute path.
//
// Handle identity is the only signal consumers use to decide whether a
// dependency was reparsed.
//
//go:generate mockgen -source=module_cache.go -destination=mocks/mock_module_cache.go -package=mocks
type ModuleCache interface {
	// IsCached reports whether an entry exists for path, stale or not.
	IsCached(path string) bool
	// Lookup returns the cached module without reparsing, or the null handle.
	Lookup(path string) domain.ModuleHandle
	// Evaluate reparses path if it is new or stale and returns the newest
	// observed modification time with the current handle. A failed reparse
	// keeps the previous handle.
	Evaluate(path string) (time.Time, domain.ModuleHandle)
	// Paths returns every cached path, sorted.
	Paths() []string
	// Clear drops every entry.
	Clear()
}
