package ports

import (
	"time"

	"go.trai.ch/modcache/internal/core/domain"
)

// DependencyHandler brings a module's deferred dependencies up to date.
//
//go:generate mockgen -source=dependency.go -destination=mocks/mock_dependency.go -package=mocks
type DependencyHandler interface {
	// HandleDependencies refreshes every deferred dependency of module and returns
	// the newest modification time found in the subtree.
	HandleDependencies(module *domain.FileModule) time.Time
}
