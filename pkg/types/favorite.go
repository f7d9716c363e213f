package types

// FavoriteColumns is the persisted column order for the favorites table.
var FavoriteColumns = []string{
	"id", "user_id", "product_id", "created_at", "updated_at",
}

// Favorite links a user to a product. The (UserID, ProductID) pair is
// unique across the table.
type Favorite struct {
	ID        string
	UserID    string
	ProductID string
	CreatedAt string
	UpdatedAt string
}

// Row renders the favorite in FavoriteColumns order.
func (f Favorite) Row() []string {
	return []string{f.ID, f.UserID, f.ProductID, f.CreatedAt, f.UpdatedAt}
}
