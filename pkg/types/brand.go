package types

// BrandColumns is the persisted column order for the brands table.
var BrandColumns = []string{"id", "name", "slug", "created_at", "updated_at"}

// Brand is a product manufacturer.
type Brand struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// Row renders the brand in BrandColumns order.
func (b Brand) Row() []string {
	return []string{b.ID, b.Name, b.Slug, b.CreatedAt, b.UpdatedAt}
}
