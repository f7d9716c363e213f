package gen

import (
	"fmt"
	"strings"

	"github.com/toolshop/seedgen/pkg/types"
)

// Products generates count catalog items referencing the given
// categories, brands, and images. Prices stay within the configured
// range; stock follows the in-stock probability.
func Products(src *Source, count int, categories []types.Category, brands []types.Brand, images []types.ProductImage) []types.Product {
	products := make([]types.Product, 0, count)
	stamp := src.refStamp()

	for i := 0; i < count; i++ {
		category := Pick(src, categories)
		brand := Pick(src, brands)
		image := Pick(src, images)

		p := types.Product{
			ID:              src.NewID(),
			Name:            src.productName(category.Name, brand.Name),
			Description:     src.productDescription(category.Name),
			Price:           src.PriceBetween(src.cfg.MinPrice, src.cfg.MaxPrice),
			IsLocationOffer: src.Chance(src.cfg.LocationOfferProbability),
			IsRental:        src.Chance(src.cfg.RentalProbability),
			CategoryID:      category.ID,
			BrandID:         brand.ID,
			ProductImageID:  image.ID,
			CreatedAt:       stamp,
			UpdatedAt:       stamp,
		}
		p.InStock = src.Chance(src.cfg.InStockProbability)
		if p.InStock {
			p.Stock = src.Between(src.cfg.MinStock, src.cfg.MaxStock)
		}

		products = append(products, p)
	}
	return products
}

// productName assembles brand, optional size/material modifiers, the
// category name, and an occasional model number.
func (s *Source) productName(category, brand string) string {
	parts := []string{brand}
	if s.Chance(0.30) {
		parts = append(parts, Pick(s, sizeModifiers))
	}
	if s.Chance(0.25) {
		parts = append(parts, Pick(s, materialModifiers))
	}
	parts = append(parts, category)
	if s.Chance(0.40) {
		parts = append(parts, s.modelNumber())
	}
	return strings.Join(parts, " ")
}

// modelNumber renders a two-letter, four-digit model code like "XK-4821".
func (s *Source) modelNumber() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("%c%c-%s",
		letters[s.rng.Intn(len(letters))],
		letters[s.rng.Intn(len(letters))],
		s.digits(4))
}

// productDescription fills a template with the tool type, an
// application, a material, and a feature.
func (s *Source) productDescription(category string) string {
	return fmt.Sprintf(Pick(s, descriptionTemplates),
		strings.ToLower(category),
		Pick(s, applications),
		strings.ToLower(Pick(s, materialModifiers)),
		Pick(s, productFeatures))
}
