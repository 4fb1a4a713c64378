package refresh_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modcache/internal/adapters/fonts"
	"go.trai.ch/modcache/internal/adapters/parser"
	"go.trai.ch/modcache/internal/adapters/searchpath"
	"go.trai.ch/modcache/internal/adapters/statcache"
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports/mocks"
	"go.trai.ch/modcache/internal/engine/externals"
	"go.trai.ch/modcache/internal/engine/modcache"
	"go.trai.ch/modcache/internal/engine/refresh"
	"go.uber.org/mock/gomock"
)

var (
	t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)
)

type fixture struct {
	dir       string
	lib       string
	stat      *statcache.Cache
	cache     *modcache.Cache
	externals *externals.Resolver
	refresher *refresh.Refresher
	logger    *mocks.MockLogger
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// newFixture wires the real adapters around a module directory and one
// library directory.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		dir:    tempDir(t),
		lib:    tempDir(t),
		stat:   statcache.New(),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	paths := searchpath.NewResolver([]string{f.lib})
	p := parser.New()
	f.externals = externals.NewResolver(paths, f.stat, p, fonts.NewRegistry(f.logger), domain.DefaultConfig(), f.logger)
	f.cache = modcache.New(f.stat, p, f.externals, f.logger)
	f.refresher = refresh.NewRefresher(f.cache, paths, f.logger)
	return f
}

func (f *fixture) write(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

// load parses a root module the way the app does: outside the module cache.
func (f *fixture) load(t *testing.T, name, content string) *domain.FileModule {
	t.Helper()
	path := f.write(t, f.dir, name, content, t0)
	m, err := parser.New().Parse([]byte(content), path, true)
	require.NoError(t, err)
	f.externals.ResolveExternals(m)
	return m
}

// pass runs one refresh pass with a fresh stat cache.
func (f *fixture) pass(m *domain.FileModule) time.Time {
	f.stat.Clear()
	return f.refresher.HandleDependencies(m)
}

func TestHandleDependencies_NoDependencies(t *testing.T) {
	f := newFixture(t)

	m := f.load(t, "a.scad", "cube();\n")
	assert.True(t, f.pass(m).IsZero())
}

func TestHandleDependencies_FilesAppearLater(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1) // part.scad is not there yet

	m := f.load(t, "a.scad", "use <lib.scad>\ninclude <part.scad>\n")
	assert.Equal(t, []string{"lib.scad"}, m.UseIndexKeys())
	assert.Empty(t, m.Inclusions())

	assert.True(t, f.pass(m).IsZero())
	assert.Equal(t, []string{"lib.scad"}, m.UseIndexKeys(), "unresolved keys stay relative")

	lib := f.write(t, f.dir, "lib.scad", "module lib() {}\n", t1)
	part := f.write(t, f.dir, "part.scad", "cube();\n", t1)

	latest := f.pass(m)
	assert.True(t, latest.Equal(t1))
	assert.Equal(t, []string{lib}, m.UseIndexKeys())
	assert.True(t, f.cache.Lookup(lib).Valid())

	f.externals.ResolveIncludeNodes(m)
	inclusions := m.Inclusions()
	require.Len(t, inclusions, 1)
	assert.Equal(t, part, inclusions[0].Path)
}

func TestHandleDependencies_Idempotent(t *testing.T) {
	f := newFixture(t)

	f.write(t, f.dir, "lib.scad", "use <deep.scad>\n", t1)
	f.write(t, f.lib, "deep.scad", "sphere();\n", t2)
	m := f.load(t, "a.scad", "use <lib.scad>\n")

	first := f.pass(m)
	keys := m.UseIndexKeys()
	second := f.pass(m)

	assert.True(t, first.Equal(t2), "the subtree's newest time is reported")
	assert.True(t, second.Equal(first))
	assert.Equal(t, keys, m.UseIndexKeys())
	assert.Equal(t, uint64(2), f.cache.Parses())
}

func TestHandleDependencies_PromotionIsNeverReverted(t *testing.T) {
	f := newFixture(t)

	lib := f.write(t, f.dir, "lib.scad", "cube();\n", t1)
	m := f.load(t, "a.scad", "use <lib.scad>\n")

	f.pass(m)
	require.Equal(t, []string{lib}, m.UseIndexKeys())
	good := f.cache.Lookup(lib)

	require.NoError(t, os.Remove(lib))
	assert.True(t, f.pass(m).IsZero())
	assert.Equal(t, []string{lib}, m.UseIndexKeys())
	assert.True(t, f.cache.Lookup(lib).Same(good), "last good parse is kept")

	f.write(t, f.dir, "lib.scad", "sphere();\n", t2)
	assert.True(t, f.pass(m).Equal(t2))
	assert.Equal(t, []string{lib}, m.UseIndexKeys())
	assert.False(t, f.cache.Lookup(lib).Same(good))
}

func TestHandleDependencies_RepeatedUseStaysPromoted(t *testing.T) {
	f := newFixture(t)

	lib := f.write(t, f.dir, "lib.scad", "cube();\n", t1)
	m := f.load(t, "a.scad", "use <lib.scad>\nuse <lib.scad>\n")

	assert.True(t, f.pass(m).Equal(t1))
	assert.Equal(t, []string{lib}, m.UseIndexKeys())

	f.externals.ResolveExternals(m)
	assert.Equal(t, []string{lib}, m.UseIndexKeys(), "no declaration brings the relative key back")

	assert.True(t, f.pass(m).Equal(t1))
	assert.Equal(t, []string{lib}, m.UseIndexKeys())
	assert.Equal(t, uint64(1), f.cache.Parses())
}

func TestHandleDependencies_SharedSibling(t *testing.T) {
	f := newFixture(t)

	util := f.write(t, f.lib, "util.scad", "cube();\n", t1)
	a := f.load(t, "a.scad", "use <util.scad>\n")
	b := f.load(t, "b.scad", "use <"+util+">\n")

	f.pass(a)
	f.pass(b)
	first := f.cache.Lookup(util)
	require.True(t, first.Valid())

	for range 3 {
		f.pass(a)
		f.pass(b)
	}

	_, h := f.cache.Evaluate(util)
	assert.True(t, h.Same(first))
	assert.Equal(t, uint64(1), f.cache.Parses())
	assert.Equal(t, []string{util}, a.UseIndexKeys())
	assert.Equal(t, []string{util}, b.UseIndexKeys())
}

func TestHandleDependencies_Cycle(t *testing.T) {
	f := newFixture(t)

	f.write(t, f.dir, "b.scad", "use <a.scad>\n", t1)
	m := f.load(t, "a.scad", "use <b.scad>\n")

	latest := f.pass(m)
	assert.True(t, latest.Equal(t1))
	assert.False(t, m.Refreshing())
}

func TestHandleDependencies_GuardShortCircuits(t *testing.T) {
	f := newFixture(t)

	f.write(t, f.dir, "lib.scad", "cube();\n", t1)
	m := f.load(t, "a.scad", "use <lib.scad>\n")

	release, ok := m.EnterRefresh()
	require.True(t, ok)

	assert.True(t, f.pass(m).IsZero())
	assert.Equal(t, []string{"lib.scad"}, m.UseIndexKeys())

	release()
	assert.True(t, f.pass(m).Equal(t1))
}

func TestHandleDependencies_IncludedUses(t *testing.T) {
	f := newFixture(t)

	f.write(t, f.dir, "inc.scad", "use <deep.scad>\n", t0)
	deep := f.write(t, f.dir, "deep.scad", "cube();\n", t2)
	m := f.load(t, "a.scad", "include <inc.scad>\n")

	assert.True(t, f.pass(m).Equal(t2))

	inclusions := m.Inclusions()
	require.Len(t, inclusions, 1)
	assert.Equal(t, []string{deep}, inclusions[0].Module.UseIndexKeys())
}

func TestHandleDependencies_CompileFailureWarnsOnce(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	broken := f.write(t, f.lib, "broken.scad", "use <oops\n", t1)
	m := f.load(t, "a.scad", "use <"+broken+">\n")

	assert.True(t, f.pass(m).Equal(t1))
	assert.True(t, f.pass(m).Equal(t1))
	assert.False(t, f.cache.IsCached(broken))
}

func TestHandleDependencies_RelativeCompileFailureIsQuiet(t *testing.T) {
	f := newFixture(t)

	broken := f.write(t, f.dir, "broken.scad", "use <oops\n", t1)
	m := f.load(t, "a.scad", "use <broken.scad>\n")

	assert.True(t, f.pass(m).Equal(t1))
	assert.Equal(t, []string{broken}, m.UseIndexKeys())
}
