// Package evaluator provides a structural evaluator that turns a resolved
// module into a render tree of its statements.
package evaluator

import (
	"context"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator implements ports.Evaluator. Included content is instantiated
// ahead of the module's own statements; used libraries only contribute
// definitions and produce no nodes.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Instantiate returns one node per statement. It stops with an error when ctx
// is done.
func (e *Evaluator) Instantiate(ctx context.Context, m *domain.FileModule) ([]domain.RenderNode, error) {
	var nodes []domain.RenderNode

	for _, inc := range m.Inclusions() {
		children, err := e.Instantiate(ctx, inc.Module)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, domain.RenderNode{Name: inc.Path, Children: children})
	}

	for _, stmt := range m.Body {
		if err := ctx.Err(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "module", m.FullPath())
		}
		nodes = append(nodes, domain.RenderNode{Name: stmt})
	}

	return nodes, nil
}
