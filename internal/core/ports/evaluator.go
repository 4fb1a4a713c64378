package ports

import (
	"context"

	"go.trai.ch/modcache/internal/core/domain"
)

// Evaluator instantiates a resolved module into a render tree.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Instantiate evaluates the module's content.
	Instantiate(ctx context.Context, module *domain.FileModule) ([]domain.RenderNode, error)
}
