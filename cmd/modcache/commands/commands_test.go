package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modcache/cmd/modcache/commands"
	"go.trai.ch/modcache/internal/app"
	"go.trai.ch/modcache/internal/build"
	"go.trai.ch/modcache/internal/core/domain"
)

type mockApp struct {
	loadFunc  func(path string) (*app.Session, error)
	checkFunc func(ctx context.Context, path string) (app.Report, error)
	depsFunc  func(path string) ([]app.Dependency, error)
	watchFunc func(ctx context.Context, path string, onRefresh func(app.Report)) error
}

func (m *mockApp) Load(path string) (*app.Session, error) {
	if m.loadFunc != nil {
		return m.loadFunc(path)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApp) Check(ctx context.Context, path string) (app.Report, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, path)
	}
	return app.Report{}, nil
}

func (m *mockApp) Dependencies(path string) ([]app.Dependency, error) {
	if m.depsFunc != nil {
		return m.depsFunc(path)
	}
	return nil, nil
}

func (m *mockApp) Watch(ctx context.Context, path string, onRefresh func(app.Report)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, path, onRefresh)
	}
	return nil
}

type fakeLogger struct {
	json    bool
	verbose bool
}

func (*fakeLogger) Debug(string) {}
func (*fakeLogger) Info(string) {}
func (*fakeLogger) Warn(string) {}
func (*fakeLogger) Error(error) {}
func (l *fakeLogger) SetJSON(v bool) { l.json = v }
func (l *fakeLogger) SetVerbose(v bool) { l.verbose = v }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	cli := commands.New(a, &fakeLogger{})
	cli.SetArgs(args)
	cli.SetOutput(&out, &out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modcache version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}

func TestCommands_Flags(t *testing.T) {
	lg := &fakeLogger{}
	cli := commands.New(&mockApp{}, lg)
	cli.SetArgs([]string{"check", "--json", "-v", "main.scad"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, lg.json)
	assert.True(t, lg.verbose)
}

func TestCommands_Check(t *testing.T) {
	t.Run("prints latest change", func(t *testing.T) {
		var gotPath string
		a := &mockApp{checkFunc: func(_ context.Context, path string) (app.Report, error) {
			gotPath = path
			return app.Report{
				Path:   "/work/main.scad",
				Latest: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
				Root:   domain.NewRootNode(domain.RenderNode{Name: "cube(10);"}),
			}, nil
		}}

		out, err := execute(t, a, "check", "main.scad")
		require.NoError(t, err)
		assert.Equal(t, "main.scad", gotPath)
		assert.Equal(t, "✓ /work/main.scad: latest change 2024-01-01T12:00:00Z, 1 render node(s)\n", out)
	})

	t.Run("no dependencies", func(t *testing.T) {
		a := &mockApp{checkFunc: func(_ context.Context, _ string) (app.Report, error) {
			return app.Report{Path: "/work/main.scad"}, nil
		}}

		out, err := execute(t, a, "check", "main.scad")
		require.NoError(t, err)
		assert.Contains(t, out, "no dependencies found")
	})

	t.Run("propagates failure", func(t *testing.T) {
		a := &mockApp{checkFunc: func(_ context.Context, _ string) (app.Report, error) {
			return app.Report{}, domain.ErrModuleNotFound
		}}

		_, err := execute(t, a, "check", "main.scad")
		require.ErrorIs(t, err, domain.ErrModuleNotFound)
	})

	t.Run("requires a file", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "check")
		require.Error(t, err)
	})
}

func TestCommands_Deps(t *testing.T) {
	a := &mockApp{depsFunc: func(_ string) ([]app.Dependency, error) {
		return []app.Dependency{
			{Kind: domain.KindInclude, Name: "/work/part.scad", Found: true},
			{
				Kind: domain.KindUse, Name: "/lib/gears.scad", Version: 2, Found: true,
				Children: []app.Dependency{
					{Kind: domain.KindUse, Name: "/lib/math.scad", Version: 1, Found: true},
					{Kind: domain.KindUse, Name: "missing.scad"},
				},
			},
			{Kind: domain.KindUse, Name: "/lib/bolts.scad", Version: 1, Found: true},
		}, nil
	}}

	out, err := execute(t, a, "deps", "main.scad")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "deps_tree", []byte(out))
}

func TestCommands_Print(t *testing.T) {
	m := domain.NewFileModule("/work", "main.scad")
	m.AddUse("gears.scad", domain.Location{Line: 1, Column: 1})
	m.AddInclude("part.scad", domain.Location{Line: 2, Column: 1})
	m.AddStatement("gear(teeth = 12);")

	a := &mockApp{loadFunc: func(path string) (*app.Session, error) {
		return &app.Session{Path: "/work/" + path, Module: m}, nil
	}}

	out, err := execute(t, a, "print", "main.scad")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "print_module", []byte(out))
}

func TestCommands_Watch(t *testing.T) {
	a := &mockApp{watchFunc: func(_ context.Context, path string, onRefresh func(app.Report)) error {
		onRefresh(app.Report{Path: "/work/" + path})
		onRefresh(app.Report{
			Path:    "/work/" + path,
			Latest:  time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			Changed: true,
		})
		return nil
	}}

	out, err := execute(t, a, "watch", "main.scad")
	require.NoError(t, err)
	assert.Equal(t, "~ /work/main.scad: latest change 2024-01-01T13:00:00Z, 0 render node(s)\n", out)
}
