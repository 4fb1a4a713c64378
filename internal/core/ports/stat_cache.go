package ports

import "go.trai.ch/modcache/internal/core/domain"

// StatCache memoizes filesystem metadata by path.
//
//go:generate mockgen -source=stat_cache.go -destination=mocks/mock_stat_cache.go -package=mocks
type StatCache interface {
	// Stat returns the metadata for path. ok is false when the file is absent
	// or unreadable.
	Stat(path string) (meta domain.FileMeta, ok bool)
	// Clear drops every memoized entry so the next Stat hits the filesystem.
	Clear()
}
