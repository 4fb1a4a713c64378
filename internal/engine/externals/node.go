package externals

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/fonts"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/parser"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/searchpath" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/statcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
)

// NodeID is the unique identifier for the externals resolver Graft node.
const NodeID graft.ID = "engine.externals"

func init() {
	graft.Register(graft.Node[ports.ExternalsResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			searchpath.NodeID,
			statcache.NodeID,
			parser.NodeID,
			fonts.NodeID,
			config.ConfigNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ExternalsResolver, error) {
			paths, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			stat, err := graft.Dep[ports.StatCache](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.FontRegistry](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(paths, stat, p, registry, cfg, log), nil
		},
	})
}
