package app

import (
	"path/filepath"

	"go.trai.ch/modcache/internal/core/domain"
)

// Dependency is a node of a module's dependency tree.
type Dependency struct {
	Kind domain.ReferenceKind
	// Name is the deferred index key or the include path.
	Name string
	// Version is the cache version of a deferred dependency, 0 if not cached.
	Version uint64
	// Found reports whether the dependency is currently available.
	Found    bool
	Children []Dependency
}

// Dependencies loads the module at path, refreshes it once and returns its
// dependency tree. The refresh is serialized with every other pass.
func (a *App) Dependencies(path string) ([]Dependency, error) {
	s, err := a.Load(path)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.deps.HandleDependencies(s.Module)
	return a.Tree(s.Module), nil
}

// Tree builds the dependency tree of m from the module cache without
// refreshing anything. Modules already on the current branch are listed but
// not expanded.
func (a *App) Tree(m *domain.FileModule) []Dependency {
	return a.tree(m, map[*domain.FileModule]bool{m: true})
}

func (a *App) tree(m *domain.FileModule, branch map[*domain.FileModule]bool) []Dependency {
	var out []Dependency

	for _, inc := range m.Inclusions() {
		out = append(out, Dependency{
			Kind:     domain.KindInclude,
			Name:     inc.Path,
			Found:    true,
			Children: a.expand(inc.Module, branch),
		})
	}

	for _, key := range m.UseIndexKeys() {
		dep := Dependency{Kind: domain.KindUse, Name: key}
		if filepath.IsAbs(key) {
			if h := a.cache.Lookup(key); h.Valid() {
				_, present := a.stat.Stat(key)
				dep.Found = present
				dep.Version = h.Version()
				dep.Children = a.expand(h.Module(), branch)
			}
		}
		out = append(out, dep)
	}

	return out
}

func (a *App) expand(m *domain.FileModule, branch map[*domain.FileModule]bool) []Dependency {
	if branch[m] {
		return nil
	}
	branch[m] = true
	defer delete(branch, m)
	return a.tree(m, branch)
}
