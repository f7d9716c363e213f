package types

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductColumns is the persisted column order for the products table.
var ProductColumns = []string{
	"id", "name", "description", "price", "is_location_offer", "is_rental",
	"category_id", "brand_id", "product_image_id", "in_stock", "stock",
	"created_at", "updated_at",
}

// Product is a catalog item referencing a category, a brand, and an image.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal
	IsLocationOffer bool
	IsRental        bool
	CategoryID      string
	BrandID         string
	ProductImageID  string
	InStock         bool
	Stock           int
	CreatedAt       string
	UpdatedAt       string
}

// Row renders the product in ProductColumns order. Price is rendered
// with two decimal places.
func (p Product) Row() []string {
	return []string{
		p.ID, p.Name, p.Description, p.Price.StringFixed(2),
		strconv.FormatBool(p.IsLocationOffer), strconv.FormatBool(p.IsRental),
		p.CategoryID, p.BrandID, p.ProductImageID,
		strconv.FormatBool(p.InStock), strconv.Itoa(p.Stock),
		p.CreatedAt, p.UpdatedAt,
	}
}
