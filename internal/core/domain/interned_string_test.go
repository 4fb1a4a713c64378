package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modcache/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("/lib/util.scad")
	is2 := domain.NewInternedString("/lib/util.scad")

	assert.True(t, is1.Same(is2), "identical strings must share a handle")
	assert.False(t, is1.Same(domain.NewInternedString("/lib/other.scad")))
	assert.Equal(t, "/lib/util.scad", is1.String())
}

func TestInternedString_ZeroValue(t *testing.T) {
	var is domain.InternedString
	assert.True(t, is.IsZero())
	assert.Empty(t, is.String())
	assert.False(t, domain.NewInternedString("").IsZero())
}
