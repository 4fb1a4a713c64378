package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/modcache/internal/adapters/watcher"
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch loads the module at path and refreshes it whenever a file in a
// watched directory changes, calling onRefresh after every pass. It returns
// when ctx is done.
func (a *App) Watch(ctx context.Context, path string, onRefresh func(Report)) error {
	s, err := a.Load(path)
	if err != nil {
		return err
	}

	// Passes outlive cancellation so the final flush completes.
	passCtx := context.WithoutCancel(ctx)
	var passMu sync.Mutex
	pass := func() {
		passMu.Lock()
		defer passMu.Unlock()

		report := a.Refresh(passCtx, s)
		if report.Changed {
			report.Root = a.Instantiate(passCtx, s.Module)
		}
		a.watchDirs(s)
		if onRefresh != nil {
			onRefresh(report)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if err := a.watcher.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}

	pass()

	debouncer := watcher.NewDebouncer(a.config.Debounce, func(paths []string) {
		a.logger.Debug(fmt.Sprintf("%d file(s) changed", len(paths)))
		pass()
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		debouncer.Flush()
		return a.watcher.Stop()
	})

	return g.Wait()
}

// watchDirs watches every directory a dependency of s could appear in.
func (a *App) watchDirs(s *Session) {
	dirs := []string{filepath.Dir(s.Path)}
	dirs = append(dirs, a.config.LibraryPaths...)
	for _, p := range a.cache.Paths() {
		dirs = append(dirs, filepath.Dir(p))
	}
	dirs = appendInclusionDirs(dirs, s.Module)

	for _, dir := range dirs {
		if err := a.watcher.Add(dir); err != nil {
			a.logger.Debug(err.Error())
		}
	}
}

func appendInclusionDirs(dirs []string, m *domain.FileModule) []string {
	for _, inc := range m.Inclusions() {
		dirs = append(dirs, filepath.Dir(inc.Path))
		dirs = appendInclusionDirs(dirs, inc.Module)
	}
	return dirs
}
