package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modcache/internal/app"
	"go.trai.ch/modcache/internal/core/domain"
	_ "go.trai.ch/modcache/internal/wiring"
)

// TestGraftGraph resolves the full node graph the binary uses.
func TestGraftGraph(t *testing.T) {
	t.Setenv(domain.LibraryPathEnv, "")
	t.Chdir(t.TempDir())

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
