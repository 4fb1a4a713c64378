// Package config provides the configuration loader for modcache.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, getenv: os.Getenv}
}

// WithGetenv replaces the environment lookup. Used for testing.
func (l *Loader) WithGetenv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// Load finds modcache.yaml in cwd or the nearest parent directory and merges
// it with the defaults and the library path environment variable.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findConfiguration(cwd)
	if found {
		if err := l.apply(cfg, configPath); err != nil {
			return nil, err
		}
	}

	if env := l.getenv(domain.LibraryPathEnv); env != "" {
		for _, dir := range filepath.SplitList(env) {
			if dir == "" {
				continue
			}
			cfg.LibraryPaths = appendUnique(cfg.LibraryPaths, l.libraryPath(cwd, dir))
		}
	}

	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, configPath string) error {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return err
	}

	if file.Version != "" && file.Version != domain.ConfigVersion {
		return zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version), "path", configPath)
	}

	base := filepath.Dir(configPath)
	for _, dir := range file.LibraryPaths {
		cfg.LibraryPaths = appendUnique(cfg.LibraryPaths, l.libraryPath(base, dir))
	}

	if len(file.FontExtensions) > 0 {
		cfg.FontExtensions = normalizeExtensions(file.FontExtensions)
	}

	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil || d < 0 {
			return zerr.With(zerr.With(domain.ErrInvalidDebounce, "debounce", file.Debounce), "path", configPath)
		}
		cfg.Debounce = d
	}

	return nil
}

// libraryPath makes dir absolute relative to base and warns when it does not exist.
func (l *Loader) libraryPath(base, dir string) string {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	dir = filepath.Clean(dir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		l.Logger.Warn(fmt.Sprintf("library path %s is not a directory", dir))
	}
	return dir
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from cwd
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = appendUnique(out, ext)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
