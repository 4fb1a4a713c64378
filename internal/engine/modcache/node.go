package modcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/parser"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/adapters/statcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/modcache/internal/engine/externals"
)

// NodeID is the unique identifier for the module cache Graft node.
const NodeID graft.ID = "engine.modcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			statcache.NodeID,
			parser.NodeID,
			externals.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			stat, err := graft.Dep[ports.StatCache](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			ext, err := graft.Dep[ports.ExternalsResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(stat, p, ext, log), nil
		},
	})
}
