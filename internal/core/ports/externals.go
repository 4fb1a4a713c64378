package ports

import (
	"time"

	"go.trai.ch/modcache/internal/core/domain"
)

// ExternalsResolver resolves the references of a freshly parsed module.
//
//go:generate mockgen -source=externals.go -destination=mocks/mock_externals.go -package=mocks
type ExternalsResolver interface {
	// ResolveExternals splices includes and indexes uses. It must run once
	// after parsing and before the module is first evaluated.
	ResolveExternals(module *domain.FileModule)
	// IncludesChanged returns the newest modification time among the
	// module's includes.
	IncludesChanged(module *domain.FileModule) time.Time
}
