package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cfg := testConfig()
	src := NewSource(cfg)
	cats := Categories(src, cfg.NumCategories)
	require.Len(t, cats, cfg.NumCategories)

	ids := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		ids[c.ID] = struct{}{}
	}

	roots := 0
	slugs := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)

		_, dup := slugs[c.Slug]
		assert.False(t, dup, "duplicate slug %s", c.Slug)
		slugs[c.Slug] = struct{}{}

		if c.ParentID == "" {
			roots++
			continue
		}
		assert.NotEqual(t, c.ID, c.ParentID, "category %s is its own parent", c.ID)
		_, ok := ids[c.ParentID]
		assert.True(t, ok, "category %s has dangling parent %s", c.ID, c.ParentID)
	}

	assert.Positive(t, roots)
	assert.Less(t, roots, len(cats))
}

func TestCategoriesSmallCount(t *testing.T) {
	cfg := testConfig()
	src := NewSource(cfg)
	cats := Categories(src, 3)
	require.Len(t, cats, 3)

	for _, c := range cats {
		assert.Empty(t, c.ParentID, "the first categories are roots")
	}
}

func TestCategoriesDeterministic(t *testing.T) {
	cfg := testConfig()
	a := Categories(NewSource(cfg), cfg.NumCategories)
	b := Categories(NewSource(cfg), cfg.NumCategories)
	assert.Equal(t, a, b)
}
