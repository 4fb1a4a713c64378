// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modcache/internal/adapters/config"
	_ "go.trai.ch/modcache/internal/adapters/evaluator"
	_ "go.trai.ch/modcache/internal/adapters/fonts"
	_ "go.trai.ch/modcache/internal/adapters/logger"
	_ "go.trai.ch/modcache/internal/adapters/parser"
	_ "go.trai.ch/modcache/internal/adapters/searchpath"
	_ "go.trai.ch/modcache/internal/adapters/statcache"
	_ "go.trai.ch/modcache/internal/adapters/telemetry"
	_ "go.trai.ch/modcache/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/modcache/internal/app"
	_ "go.trai.ch/modcache/internal/engine/externals"
	_ "go.trai.ch/modcache/internal/engine/modcache"
	_ "go.trai.ch/modcache/internal/engine/refresh"
)
