package domain

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"path/filepath"
	"slices"
)

// Inclusion is the parsed content of an eagerly included file.
type Inclusion struct {
	// Path is the resolved absolute path of the included file.
	Path string
	// Module is the parsed include. It is owned by the including module.
	Module *FileModule
}

// FileModule is the unit of parsing: a single source file, its references in
// declaration order and the deferred-reference index built from them.
//
// A FileModule is not safe for concurrent use. Modules handed out by the
// module cache are shared, read-mostly values; only the refresh pass mutates
// the deferred index.
type FileModule struct {
	// Path is the directory used as the base for relative lookups.
	Path string
	// Filename is the module's own source name.
	Filename string
	// Body holds the module's own statements in source order.
	Body []string

	refs       []Reference
	inclusions []Inclusion
	useIndex   map[string]Reference
	// promoted maps a filename as written to the absolute key it moved to.
	promoted   map[string]string
	refreshing bool
}

// NewFileModule creates an empty module rooted at path.
func NewFileModule(path, filename string) *FileModule {
	return &FileModule{
		Path:     path,
		Filename: filename,
		useIndex: make(map[string]Reference),
		promoted: make(map[string]string),
	}
}

// FullPath returns the module's source path.
func (m *FileModule) FullPath() string {
	if filepath.IsAbs(m.Filename) || m.Path == "" {
		return m.Filename
	}
	return filepath.Join(m.Path, m.Filename)
}

// AddUse appends a deferred reference.
func (m *FileModule) AddUse(filename string, loc Location) {
	m.refs = append(m.refs, NewUse(filename, loc))
}

// AddInclude appends an eager reference.
func (m *FileModule) AddInclude(filename string, loc Location) {
	m.refs = append(m.refs, NewInclude(filename, loc))
}

// AddStatement appends a statement to the module's own content.
func (m *FileModule) AddStatement(stmt string) {
	m.Body = append(m.Body, stmt)
}

// References yields every reference in declaration order.
func (m *FileModule) References() iter.Seq[Reference] {
	return slices.Values(m.refs)
}

// ReferencesOf yields the references of the given kind in declaration order.
func (m *FileModule) ReferencesOf(kind ReferenceKind) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		for _, ref := range m.refs {
			if ref.Kind != kind {
				continue
			}
			if !yield(ref) {
				return
			}
		}
	}
}

// UseNodes returns the deferred references in declaration order.
func (m *FileModule) UseNodes() []Reference {
	return slices.Collect(m.ReferencesOf(KindUse))
}

// ResetInclusions drops all spliced include content.
func (m *FileModule) ResetInclusions() {
	m.inclusions = nil
}

// AddInclusion splices the parsed content of an include into the module.
func (m *FileModule) AddInclusion(path string, inc *FileModule) {
	m.inclusions = append(m.inclusions, Inclusion{Path: path, Module: inc})
}

// Inclusions returns the spliced includes in resolution order.
func (m *FileModule) Inclusions() []Inclusion {
	return slices.Clone(m.inclusions)
}

// IndexUse records a deferred reference under its filename as written.
// An existing key is never overwritten, and a filename that was already
// promoted to an absolute key is not indexed again, whichever declaration
// of it is presented.
func (m *FileModule) IndexUse(ref Reference) {
	if _, exists := m.useIndex[ref.Filename]; exists {
		return
	}
	if _, done := m.promoted[ref.Filename]; done {
		return
	}
	m.useIndex[ref.Filename] = ref
}

// UseIndex yields the deferred index in sorted key order.
func (m *FileModule) UseIndex() iter.Seq2[string, Reference] {
	return func(yield func(string, Reference) bool) {
		for _, key := range m.UseIndexKeys() {
			if !yield(key, m.useIndex[key]) {
				return
			}
		}
	}
}

// UseIndexKeys returns the keys of the deferred index, sorted.
func (m *FileModule) UseIndexKeys() []string {
	return slices.Sorted(maps.Keys(m.useIndex))
}

// PromoteUse moves the reference indexed under from to the key to.
// Both keys are never present at once. When to is already indexed the entry
// under from is simply dropped.
func (m *FileModule) PromoteUse(from, to string) {
	ref, ok := m.useIndex[from]
	if !ok || from == to {
		return
	}
	if _, exists := m.useIndex[to]; !exists {
		m.useIndex[to] = ref
	}
	delete(m.useIndex, from)
	m.promoted[from] = to
}

// EnterRefresh marks the module as refreshing. It reports false when a refresh
// of this module is already in progress; otherwise the returned release func
// must be called (typically deferred) to clear the mark.
func (m *FileModule) EnterRefresh() (release func(), ok bool) {
	if m.refreshing {
		return func() {}, false
	}
	m.refreshing = true
	return func() { m.refreshing = false }, true
}

// Refreshing reports whether a dependency refresh is in progress.
func (m *FileModule) Refreshing() bool {
	return m.refreshing
}

// Print writes the reference declarations followed by the module's content.
func (m *FileModule) Print(w io.Writer) error {
	for _, ref := range m.refs {
		if _, err := fmt.Fprintln(w, ref.String()); err != nil {
			return err
		}
	}
	for _, stmt := range m.Body {
		if _, err := fmt.Fprintln(w, stmt); err != nil {
			return err
		}
	}
	return nil
}
