package domain

// ModuleHandle is a non-owning reference to a module held by the module cache.
//
// Every successful parse gets a fresh version, so comparing handles with Same
// tells whether a dependency's parsed form was replaced. The zero value is the
// null handle.
type ModuleHandle struct {
	module  *FileModule
	version uint64
}

// NewModuleHandle creates a handle. Only the module cache should mint handles.
func NewModuleHandle(m *FileModule, version uint64) ModuleHandle {
	return ModuleHandle{module: m, version: version}
}

// Module returns the referenced module, or nil for the null handle.
func (h ModuleHandle) Module() *FileModule {
	return h.module
}

// Version returns the parse version the handle refers to.
func (h ModuleHandle) Version() uint64 {
	return h.version
}

// Valid reports whether the handle refers to a module.
func (h ModuleHandle) Valid() bool {
	return h.module != nil
}

// Same reports whether both handles refer to the same parse.
func (h ModuleHandle) Same(other ModuleHandle) bool {
	return h.version == other.version
}
