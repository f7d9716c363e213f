package types

// CategoryColumns is the persisted column order for the categories table.
var CategoryColumns = []string{
	"id", "name", "slug", "parent_id", "created_at", "updated_at",
}

// Category is a node in the product taxonomy. ParentID is empty for
// root categories and must reference an existing category otherwise.
type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string
	CreatedAt string
	UpdatedAt string
}

// Row renders the category in CategoryColumns order.
func (c Category) Row() []string {
	return []string{c.ID, c.Name, c.Slug, c.ParentID, c.CreatedAt, c.UpdatedAt}
}
