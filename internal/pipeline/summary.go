package pipeline

import "github.com/toolshop/seedgen/pkg/types"

// summarize logs the relationship statistics of a completed run.
func (r *Runner) summarize(ds *Dataset) {
	roots := 0
	for _, c := range ds.Categories {
		if c.ParentID == "" {
			roots++
		}
	}

	inStock := 0
	for _, p := range ds.Products {
		if p.InStock {
			inStock++
		}
	}

	successful := 0
	for _, p := range ds.Payments {
		if p.Status == types.StatusSuccess {
			successful++
		}
	}

	total := len(ds.Users) + len(ds.Categories) + len(ds.Brands) +
		len(ds.ProductImages) + len(ds.Products) + len(ds.Favorites) +
		len(ds.Invoices) + len(ds.InvoiceItems) + len(ds.Payments)

	evt := r.log.Info().
		Int("total_records", total).
		Int("root_categories", roots).
		Int("subcategories", len(ds.Categories)-roots).
		Int("products_in_stock", inStock).
		Int("products_out_of_stock", len(ds.Products)-inStock)
	if len(ds.Invoices) > 0 {
		evt = evt.Float64("avg_items_per_invoice",
			float64(len(ds.InvoiceItems))/float64(len(ds.Invoices)))
	}
	if len(ds.Payments) > 0 {
		evt = evt.Float64("payment_success_rate",
			float64(successful)/float64(len(ds.Payments)))
	}
	evt.Msg("generation run complete")
}
