package fonts

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/logger"
	"go.trai.ch/modcache/internal/core/ports"
)

// NodeID is the unique identifier for the font registry Graft node.
const NodeID graft.ID = "adapter.fonts"

func init() {
	graft.Register(graft.Node[ports.FontRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FontRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log), nil
		},
	})
}
