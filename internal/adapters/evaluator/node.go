package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "adapter.evaluator"

func init() {
	graft.Register(graft.Node[ports.Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Evaluator, error) {
			return New(), nil
		},
	})
}
