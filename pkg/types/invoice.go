package types

import "github.com/shopspring/decimal"

// InvoiceColumns is the persisted column order for the invoices table.
var InvoiceColumns = []string{
	"id", "invoice_number", "invoice_date", "billing_address",
	"billing_city", "billing_state", "billing_country", "billing_postcode",
	"user_id", "total", "created_at", "updated_at",
}

// Invoice is an order header. Total starts at zero and is backfilled
// once after all items referencing the invoice exist.
type Invoice struct {
	ID              string
	InvoiceNumber   string
	InvoiceDate     string
	BillingAddress  string
	BillingCity     string
	BillingState    string
	BillingCountry  string
	BillingPostcode string
	UserID          string
	Total           decimal.Decimal
	CreatedAt       string
	UpdatedAt       string
}

// Row renders the invoice in InvoiceColumns order. Total is rendered
// with two decimal places.
func (i Invoice) Row() []string {
	return []string{
		i.ID, i.InvoiceNumber, i.InvoiceDate, i.BillingAddress,
		i.BillingCity, i.BillingState, i.BillingCountry, i.BillingPostcode,
		i.UserID, i.Total.StringFixed(2), i.CreatedAt, i.UpdatedAt,
	}
}
