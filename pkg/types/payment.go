package types

// PaymentColumns is the persisted column order for the payments table.
var PaymentColumns = []string{
	"id", "invoice_id", "method", "status", "payment_reference_id",
	"created_at", "updated_at",
}

// Payment records a payment attempt against an invoice. ReferenceID is
// empty for failed payments.
type Payment struct {
	ID          string
	InvoiceID   string
	Method      string
	Status      string
	ReferenceID string
	CreatedAt   string
	UpdatedAt   string
}

// Row renders the payment in PaymentColumns order.
func (p Payment) Row() []string {
	return []string{
		p.ID, p.InvoiceID, p.Method, p.Status, p.ReferenceID,
		p.CreatedAt, p.UpdatedAt,
	}
}
