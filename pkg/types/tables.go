package types

// Table names. These double as CSV base filenames (<name>.csv).
const (
	TableUsers         = "users"
	TableCategories    = "categories"
	TableBrands        = "brands"
	TableProductImages = "product_images"
	TableProducts      = "products"
	TableFavorites     = "favorites"
	TableInvoices      = "invoices"
	TableInvoiceItems  = "invoice_items"
	TablePayments      = "payments"
)

// TableNames lists all tables in generation/persist order.
var TableNames = []string{
	TableUsers,
	TableCategories,
	TableBrands,
	TableProductImages,
	TableProducts,
	TableFavorites,
	TableInvoices,
	TableInvoiceItems,
	TablePayments,
}

// Columns returns the declared column order for a table, or nil for an
// unknown table name.
func Columns(table string) []string {
	switch table {
	case TableUsers:
		return UserColumns
	case TableCategories:
		return CategoryColumns
	case TableBrands:
		return BrandColumns
	case TableProductImages:
		return ProductImageColumns
	case TableProducts:
		return ProductColumns
	case TableFavorites:
		return FavoriteColumns
	case TableInvoices:
		return InvoiceColumns
	case TableInvoiceItems:
		return InvoiceItemColumns
	case TablePayments:
		return PaymentColumns
	default:
		return nil
	}
}
