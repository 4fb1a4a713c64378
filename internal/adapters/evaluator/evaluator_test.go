package evaluator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modcache/internal/adapters/evaluator"
	"go.trai.ch/modcache/internal/core/domain"
)

func TestEvaluator_Instantiate(t *testing.T) {
	inc := domain.NewFileModule("/x", "part.scad")
	inc.AddStatement("sphere();")

	m := domain.NewFileModule("/x", "a.scad")
	m.AddUse("lib.scad", domain.Location{Line: 1, Column: 1})
	m.AddStatement("cube();")
	m.AddStatement("cylinder();")
	m.AddInclusion("/x/part.scad", inc)

	nodes, err := evaluator.New().Instantiate(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, []domain.RenderNode{
		{Name: "/x/part.scad", Children: []domain.RenderNode{{Name: "sphere();"}}},
		{Name: "cube();"},
		{Name: "cylinder();"},
	}, nodes)
}

func TestEvaluator_Instantiate_Cancelled(t *testing.T) {
	m := domain.NewFileModule("/x", "a.scad")
	m.AddStatement("cube();")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evaluator.New().Instantiate(ctx, m)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEvaluationFailed.Error())
}
