// Package externals resolves the include and use references of a parsed module.
package externals

import (
	"fmt"
	"os"
	"slices"
	"time"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExternalsResolver = (*Resolver)(nil)

// Resolver implements ports.ExternalsResolver.
//
// Includes are read and parsed directly on every pass, never through the
// module cache. Uses are only indexed here; locating them is left to the
// dependency refresh.
type Resolver struct {
	paths  ports.PathResolver
	stat   ports.StatCache
	parser ports.Parser
	fonts  ports.FontRegistry
	config *domain.Config
	logger ports.Logger

	readFile func(string) ([]byte, error)
}

// NewResolver creates a new Resolver.
func NewResolver(
	paths ports.PathResolver,
	stat ports.StatCache,
	parser ports.Parser,
	fonts ports.FontRegistry,
	config *domain.Config,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		paths:    paths,
		stat:     stat,
		parser:   parser,
		fonts:    fonts,
		config:   config,
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// ResolveExternals resolves the includes of m and then indexes its uses.
func (r *Resolver) ResolveExternals(m *domain.FileModule) {
	r.resolveExternals(m, []string{m.FullPath()})
}

func (r *Resolver) resolveExternals(m *domain.FileModule, stack []string) {
	r.resolveIncludeNodes(m, stack)
	r.ResolveUseNodes(m)
}

// ResolveIncludeNodes parses every include of m and splices it into m,
// replacing the inclusions of any previous pass.
func (r *Resolver) ResolveIncludeNodes(m *domain.FileModule) {
	r.resolveIncludeNodes(m, []string{m.FullPath()})
}

// resolveIncludeNodes works on stack, the include chain leading to m.
func (r *Resolver) resolveIncludeNodes(m *domain.FileModule, stack []string) {
	m.ResetInclusions()

	for ref := range m.ReferencesOf(domain.KindInclude) {
		path := r.paths.FindValidPath(m.Path, ref.Filename)
		if path == "" {
			r.warn(ref, zerr.With(domain.ErrIncludeNotFound, "file", ref.Filename))
			continue
		}

		if slices.Contains(stack, path) {
			r.warn(ref, zerr.With(domain.ErrIncludeCycle, "file", path))
			continue
		}

		inc, err := r.parse(path)
		if err != nil {
			r.warn(ref, err)
			continue
		}

		r.resolveExternals(inc, append(slices.Clip(stack), path))
		m.AddInclusion(path, inc)
	}
}

func (r *Resolver) parse(path string) (*domain.FileModule, error) {
	src, err := r.readFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleReadFailed.Error()), "path", path)
	}
	return r.parser.Parse(src, path, false)
}

// ResolveUseNodes registers font files and indexes every other use under its
// filename as written.
func (r *Resolver) ResolveUseNodes(m *domain.FileModule) {
	for ref := range m.ReferencesOf(domain.KindUse) {
		if !r.config.IsFont(ref.Filename) {
			m.IndexUse(ref)
			continue
		}

		path := r.paths.FindValidPath(m.Path, ref.Filename)
		if path == "" {
			path = ref.Filename
		}
		if meta, ok := r.stat.Stat(path); ok && meta.IsRegular() {
			r.fonts.RegisterFontFile(path)
			continue
		}
		r.warn(ref, zerr.With(domain.ErrFontUnreadable, "path", path))
	}
}

// IncludesChanged returns the newest modification time among the includes of
// m and of everything they include. The zero time means none was found.
func (r *Resolver) IncludesChanged(m *domain.FileModule) time.Time {
	var latest time.Time
	for ref := range m.ReferencesOf(domain.KindInclude) {
		latest = domain.Latest(latest, r.includeModified(m, ref))
	}
	for _, inc := range m.Inclusions() {
		latest = domain.Latest(latest, r.IncludesChanged(inc.Module))
	}
	return latest
}

func (r *Resolver) includeModified(m *domain.FileModule, ref domain.Reference) time.Time {
	path := r.paths.FindValidPath(m.Path, ref.Filename)
	if path == "" {
		path = ref.Filename
	}
	if meta, ok := r.stat.Stat(path); ok {
		return meta.ModTime
	}
	return time.Time{}
}

func (r *Resolver) warn(ref domain.Reference, err error) {
	r.logger.Warn(fmt.Sprintf("%s: %v", ref.Location, err))
}
