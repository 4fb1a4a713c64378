// Package app implements the application layer for modcache.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	parser    ports.Parser
	externals ports.ExternalsResolver
	deps      ports.DependencyHandler
	cache     ports.ModuleCache
	stat      ports.StatCache
	evaluator ports.Evaluator
	watcher   ports.Watcher
	tracer    ports.Tracer
	logger    ports.Logger
	config    *domain.Config

	readFile func(string) ([]byte, error)

	// mu serializes refresh passes.
	mu sync.Mutex
}

// New creates a new App instance.
func New(
	parser ports.Parser,
	externals ports.ExternalsResolver,
	deps ports.DependencyHandler,
	cache ports.ModuleCache,
	stat ports.StatCache,
	evaluator ports.Evaluator,
	watcher ports.Watcher,
	tracer ports.Tracer,
	logger ports.Logger,
	config *domain.Config,
) *App {
	return &App{
		parser:    parser,
		externals: externals,
		deps:      deps,
		cache:     cache,
		stat:      stat,
		evaluator: evaluator,
		watcher:   watcher,
		tracer:    tracer,
		logger:    logger,
		config:    config,
		readFile:  os.ReadFile,
	}
}

// Session tracks a root module across refresh passes.
type Session struct {
	// Path is the absolute path of the root module.
	Path string
	// Module is the current parse of the root module.
	Module *domain.FileModule

	modTime time.Time
	latest  time.Time
}

// Report describes the outcome of a refresh pass.
type Report struct {
	Path string
	// Latest is the newest modification time among the root's deferred
	// dependencies. The zero time means none was found.
	Latest time.Time
	// Changed is set when the root was reparsed or a dependency is newer
	// than in the previous pass.
	Changed bool
	// Reloaded is set when the root module itself was reparsed.
	Reloaded bool
	// Root is the instantiated render tree, filled in by Check and Watch.
	Root domain.RenderNode
}

// Load parses the root module at path and resolves its externals.
func (a *App) Load(path string) (*Session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	a.stat.Clear()
	meta, ok := a.stat.Stat(abs)
	if !ok || meta.IsDir() {
		return nil, zerr.With(domain.ErrModuleNotFound, "path", abs)
	}

	m, err := a.parse(abs)
	if err != nil {
		return nil, err
	}

	return &Session{
		Path:    abs,
		Module:  m,
		modTime: domain.Latest(meta.ModTime, a.externals.IncludesChanged(m)),
	}, nil
}

func (a *App) parse(path string) (*domain.FileModule, error) {
	src, err := a.readFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleReadFailed.Error()), "path", path)
	}

	m, err := a.parser.Parse(src, path, true)
	if err != nil {
		return nil, err
	}
	a.externals.ResolveExternals(m)
	return m, nil
}

// Refresh runs one refresh pass: the stat cache is cleared, the root module
// is reparsed if it or one of its includes changed, and the deferred
// dependencies are brought up to date.
func (a *App) Refresh(ctx context.Context, s *Session) Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, span := a.tracer.Start(ctx, "modcache.refresh")
	defer span.End()
	span.SetAttribute("module", s.Path)

	a.stat.Clear()
	reloaded := a.reloadRoot(s, span)

	latest := a.deps.HandleDependencies(s.Module)
	changed := reloaded || latest.After(s.latest)
	s.latest = latest

	span.SetAttribute("latest", latest.Format(time.RFC3339Nano))
	span.SetAttribute("changed", changed)
	span.SetAttribute("reloaded", reloaded)

	return Report{
		Path:     s.Path,
		Latest:   latest,
		Changed:  changed,
		Reloaded: reloaded,
	}
}

// reloadRoot reparses the root when it is newer than its last parse. A failed
// reparse keeps the previous module and is not retried until the file changes
// again.
func (a *App) reloadRoot(s *Session, span ports.Span) bool {
	meta, ok := a.stat.Stat(s.Path)
	if !ok {
		a.logger.Warn(zerr.With(domain.ErrModuleNotFound, "path", s.Path).Error())
		return false
	}

	observed := domain.Latest(meta.ModTime, a.externals.IncludesChanged(s.Module))
	if !observed.After(s.modTime) {
		return false
	}
	s.modTime = observed

	m, err := a.parse(s.Path)
	if err != nil {
		span.RecordError(err)
		a.logger.Error(err)
		return false
	}

	s.Module = m
	s.modTime = domain.Latest(meta.ModTime, a.externals.IncludesChanged(m))
	a.logger.Debug(fmt.Sprintf("reloaded %s", s.Path))
	return true
}

// Instantiate evaluates m. Any error or panic raised by the evaluator is
// logged and yields an empty root node.
func (a *App) Instantiate(ctx context.Context, m *domain.FileModule) (root domain.RenderNode) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error(zerr.With(domain.ErrEvaluationFailed, "panic", fmt.Sprint(r)))
			root = domain.NewRootNode()
		}
	}()

	children, err := a.evaluator.Instantiate(ctx, m)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()))
		return domain.NewRootNode()
	}
	return domain.NewRootNode(children...)
}

// Check loads the module at path, refreshes its dependencies once and
// instantiates it.
func (a *App) Check(ctx context.Context, path string) (Report, error) {
	s, err := a.Load(path)
	if err != nil {
		return Report{}, err
	}

	report := a.Refresh(ctx, s)
	report.Root = a.Instantiate(ctx, s.Module)
	return report, nil
}
