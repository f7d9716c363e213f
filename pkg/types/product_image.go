package types

// ProductImageColumns is the persisted column order for product_images.
var ProductImageColumns = []string{
	"id", "by_name", "by_url", "source_name", "source_url", "file_name",
	"title", "created_at", "updated_at",
}

// ProductImage is a stock photo with attribution.
type ProductImage struct {
	ID         string
	ByName     string // photographer
	ByURL      string // photographer profile
	SourceName string // stock site
	SourceURL  string
	FileName   string
	Title      string
	CreatedAt  string
	UpdatedAt  string
}

// Row renders the image in ProductImageColumns order.
func (p ProductImage) Row() []string {
	return []string{
		p.ID, p.ByName, p.ByURL, p.SourceName, p.SourceURL, p.FileName,
		p.Title, p.CreatedAt, p.UpdatedAt,
	}
}
