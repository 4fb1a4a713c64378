package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modcache/internal/adapters/config"
	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func noEnv(string) string { return "" }

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm)
	require.NoError(t, err)
}

func TestLoader_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	loader := config.NewLoader(mockLogger).WithGetenv(noEnv)

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.LibraryPaths)
	assert.Equal(t, domain.DefaultFontExtensions(), cfg.FontExtensions)
	assert.Equal(t, domain.DefaultDebounceWindow, cfg.Debounce)
}

func TestLoader_Load_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "libs"), domain.DirPerm))
	createFile(t, root, domain.ConfigFileName, `
version: "1"
library_paths:
  - libs
font_extensions:
  - OTF
  - .woff
debounce: 200ms
`)

	// Discovery walks up from a nested directory.
	nested := filepath.Join(root, "src", "parts")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	loader := config.NewLoader(mockLogger).WithGetenv(noEnv)
	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "libs")}, cfg.LibraryPaths)
	assert.Equal(t, []string{".otf", ".woff"}, cfg.FontExtensions)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
}

func TestLoader_Load_Env(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	root := t.TempDir()
	libA := filepath.Join(root, "a")
	require.NoError(t, os.Mkdir(libA, domain.DirPerm))
	missing := filepath.Join(root, "missing")

	env := libA + string(os.PathListSeparator) + string(os.PathListSeparator) + missing
	loader := config.NewLoader(mockLogger).WithGetenv(func(key string) string {
		if key == domain.LibraryPathEnv {
			return env
		}
		return ""
	})

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{libA, missing}, cfg.LibraryPaths)
}

func TestLoader_Load_InvalidDebounce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "debounce: soon\n")

	loader := config.NewLoader(mockLogger).WithGetenv(noEnv)
	_, err := loader.Load(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidDebounce.Error())
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "library_paths: [unterminated\n")

	loader := config.NewLoader(mockLogger).WithGetenv(noEnv)
	_, err := loader.Load(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_UnsupportedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "version: \"2\"\n")

	_, err := config.NewLoader(mockLogger).WithGetenv(noEnv).Load(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedConfigVersion.Error())
}

func TestLoader_Load_VersionOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "debounce: 1s\n")

	cfg, err := config.NewLoader(mockLogger).WithGetenv(noEnv).Load(root)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Debounce)
}
