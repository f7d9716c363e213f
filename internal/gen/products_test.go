package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	cfg := testConfig()
	src := NewSource(cfg)

	categories := Categories(src, cfg.NumCategories)
	brands := Brands(src, cfg.NumBrands)
	images := ProductImages(src, cfg.NumProductImages, categories)
	products := Products(src, cfg.NumProducts, categories, brands, images)
	require.Len(t, products, cfg.NumProducts)

	categoryIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		categoryIDs[c.ID] = struct{}{}
	}
	brandIDs := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		brandIDs[b.ID] = struct{}{}
	}
	imageIDs := make(map[string]struct{}, len(images))
	for _, img := range images {
		imageIDs[img.ID] = struct{}{}
	}

	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)

		price, _ := p.Price.Float64()
		assert.GreaterOrEqual(t, price, cfg.MinPrice)
		assert.LessOrEqual(t, price, cfg.MaxPrice)

		_, ok := categoryIDs[p.CategoryID]
		assert.True(t, ok, "product %s has dangling category %s", p.ID, p.CategoryID)
		_, ok = brandIDs[p.BrandID]
		assert.True(t, ok, "product %s has dangling brand %s", p.ID, p.BrandID)
		_, ok = imageIDs[p.ProductImageID]
		assert.True(t, ok, "product %s has dangling image %s", p.ID, p.ProductImageID)

		if p.InStock {
			assert.GreaterOrEqual(t, p.Stock, cfg.MinStock)
			assert.LessOrEqual(t, p.Stock, cfg.MaxStock)
		} else {
			assert.Zero(t, p.Stock)
		}
	}
}
