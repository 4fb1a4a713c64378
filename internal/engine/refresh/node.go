package refresh

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/searchpath" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/modcache/internal/engine/modcache"
)

// NodeID is the unique identifier for the dependency refresher Graft node.
const NodeID graft.ID = "engine.refresh"

func init() {
	graft.Register(graft.Node[*Refresher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			modcache.NodeID,
			searchpath.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Refresher, error) {
			cache, err := graft.Dep[*modcache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			paths, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRefresher(cache, paths, log), nil
		},
	})
}
