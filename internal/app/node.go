package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/evaluator" //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/parser"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/statcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/modcache/internal/engine/externals"
	"go.trai.ch/modcache/internal/engine/modcache"
	"go.trai.ch/modcache/internal/engine/refresh"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			parser.NodeID,
			externals.NodeID,
			refresh.NodeID,
			modcache.NodeID,
			statcache.NodeID,
			evaluator.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	p, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}

	ext, err := graft.Dep[ports.ExternalsResolver](ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graft.Dep[*refresh.Refresher](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*modcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	stat, err := graft.Dep[ports.StatCache](ctx)
	if err != nil {
		return nil, err
	}

	eval, err := graft.Dep[ports.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(p, ext, deps, cache, stat, eval, w, tracer, log, cfg), nil
}
