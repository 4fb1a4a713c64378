package ports

// PathResolver maps a referenced filename to an absolute path using the search path.
//
//go:generate mockgen -source=path_resolver.go -destination=mocks/mock_path_resolver.go -package=mocks
type PathResolver interface {
	// FindValidPath resolves filename relative to base, then the library paths.
	// It returns "" when no valid file exists.
	FindValidPath(base, filename string) string
}
