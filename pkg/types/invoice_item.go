package types

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// InvoiceItemColumns is the persisted column order for invoice_items.
var InvoiceItemColumns = []string{
	"id", "invoice_id", "product_id", "quantity", "unit_price",
	"created_at", "updated_at",
}

// InvoiceItem is a single line of an invoice. Quantity is positive and
// UnitPrice non-negative.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt string
	UpdatedAt string
}

// LineTotal returns Quantity × UnitPrice.
func (i InvoiceItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Row renders the item in InvoiceItemColumns order.
func (i InvoiceItem) Row() []string {
	return []string{
		i.ID, i.InvoiceID, i.ProductID, strconv.Itoa(i.Quantity),
		i.UnitPrice.StringFixed(2), i.CreatedAt, i.UpdatedAt,
	}
}
