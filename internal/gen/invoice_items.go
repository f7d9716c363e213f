package gen

import (
	"github.com/shopspring/decimal"

	"github.com/toolshop/seedgen/pkg/types"
)

// InvoiceItems generates roughly count line items spread across the
// invoices in set, each referencing a product. The unit price is the
// product price with a bounded ±10% perturbation. The returned map
// carries the accumulated subtotal per invoice ID; the caller closes
// the invoice set with it.
func InvoiceItems(src *Source, count int, set *InvoiceSet, products []types.Product) ([]types.InvoiceItem, map[string]decimal.Decimal) {
	items := make([]types.InvoiceItem, 0, count)
	totals := make(map[string]decimal.Decimal, set.Len())
	stamp := src.refStamp()

	perInvoice := count / set.Len()
	remainder := count % set.Len()

	generated := 0
	for i := 0; i < set.Len(); i++ {
		n := perInvoice
		if i < remainder {
			n++
		}
		if n < src.cfg.MinInvoiceItems {
			n = src.cfg.MinInvoiceItems
		}
		if n > src.cfg.MaxInvoiceItems {
			n = src.cfg.MaxInvoiceItems
		}

		invoiceID := set.ID(i)
		subtotal := decimal.Zero

		for j := 0; j < n && generated < count; j++ {
			product := Pick(src, products)
			quantity := src.Between(src.cfg.MinQuantityPerItem, src.cfg.MaxQuantityPerItem)

			perturbation := decimal.NewFromFloat(0.9 + src.rng.Float64()*0.2)
			unitPrice := product.Price.Mul(perturbation).Round(2)

			item := types.InvoiceItem{
				ID:        src.NewID(),
				InvoiceID: invoiceID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
				CreatedAt: stamp,
				UpdatedAt: stamp,
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal())
			generated++
		}

		totals[invoiceID] = subtotal
	}
	return items, totals
}
