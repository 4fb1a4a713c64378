package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "modcache.yaml"
	// ConfigVersion is the config schema version this build reads. An empty
	// version in the file is treated as this one.
	ConfigVersion = "1"

	// LibraryPathEnv lists additional library directories, separated by the
	// OS path list separator.
	LibraryPathEnv = "MODCACHE_PATH"

	// DefaultDebounceWindow coalesces bursts of file events in watch mode.
	DefaultDebounceWindow = 50 * time.Millisecond

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// DefaultFontExtensions are the extensions treated as font assets rather than modules.
func DefaultFontExtensions() []string {
	return []string{".otf", ".ttf"}
}

// Config is the resolved runtime configuration.
type Config struct {
	// LibraryPaths are searched, in order, after the referencing module's directory.
	LibraryPaths []string
	// FontExtensions are lower-case extensions, including the dot.
	FontExtensions []string
	// Debounce is the watch-mode event coalescing window.
	Debounce time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		FontExtensions: DefaultFontExtensions(),
		Debounce:       DefaultDebounceWindow,
	}
}

// IsFont reports whether filename has one of the configured font extensions.
// The comparison is case-insensitive.
func (c *Config) IsFont(filename string) bool {
	return slices.Contains(c.FontExtensions, strings.ToLower(filepath.Ext(filename)))
}
