package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrands(t *testing.T) {
	cfg := testConfig()
	src := NewSource(cfg)
	brands := Brands(src, 60)
	require.Len(t, brands, 60)

	names := make(map[string]struct{}, len(brands))
	slugs := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Slug)

		_, dup := names[b.Name]
		assert.False(t, dup, "duplicate brand name %s", b.Name)
		names[b.Name] = struct{}{}

		_, dup = slugs[b.Slug]
		assert.False(t, dup, "duplicate brand slug %s", b.Slug)
		slugs[b.Slug] = struct{}{}
	}

	// The catalog names come first; a count past the catalog falls back
	// to synthesized company names.
	assert.Equal(t, ToolBrands[0], brands[0].Name)
}

func TestBrandsDeterministic(t *testing.T) {
	cfg := testConfig()
	a := Brands(NewSource(cfg), 60)
	b := Brands(NewSource(cfg), 60)
	assert.Equal(t, a, b)
}
