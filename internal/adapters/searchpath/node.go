package searchpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/config"
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
)

// NodeID is the unique identifier for the search path resolver Graft node.
const NodeID graft.ID = "adapter.search_path"

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg.LibraryPaths), nil
		},
	})
}
