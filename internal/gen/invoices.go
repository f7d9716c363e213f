package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/toolshop/seedgen/pkg/types"
)

// InvoiceSet holds invoices whose totals are not final yet. Invoices
// are created with a zero total; Close backfills every total exactly
// once from the per-invoice sums accumulated during item generation.
type InvoiceSet struct {
	invoices []types.Invoice
	closed   bool
}

// Len returns the number of invoices in the set.
func (s *InvoiceSet) Len() int { return len(s.invoices) }

// ID returns the identifier of invoice i.
func (s *InvoiceSet) ID(i int) string { return s.invoices[i].ID }

// Close backfills each invoice total from totals, keyed by invoice ID.
// Invoices absent from the map keep a zero total. Returns ErrSetClosed
// on a second call.
func (s *InvoiceSet) Close(totals map[string]decimal.Decimal) error {
	if s.closed {
		return types.ErrSetClosed
	}
	for i := range s.invoices {
		if total, ok := totals[s.invoices[i].ID]; ok {
			s.invoices[i].Total = total
		}
	}
	s.closed = true
	return nil
}

// Rows returns the finalized invoices. Returns ErrSetOpen if Close has
// not been called, so unfinalized totals can never be persisted.
func (s *InvoiceSet) Rows() ([]types.Invoice, error) {
	if !s.closed {
		return nil, types.ErrSetOpen
	}
	return s.invoices, nil
}

// Invoices generates count invoice headers for random users, with
// unique invoice numbers and zero placeholder totals. The returned set
// must be closed with per-invoice totals before its rows can be read.
func Invoices(src *Source, count int, users []types.User) *InvoiceSet {
	set := &InvoiceSet{invoices: make([]types.Invoice, 0, count)}
	usedNumbers := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		user := Pick(src, users)
		year := src.Between(src.ref.Year()-1, src.ref.Year())
		created, updated := src.createdUpdated()

		sequence := i + 1
		number := src.invoiceNumber(year, sequence)
		for {
			if _, taken := usedNumbers[number]; !taken {
				break
			}
			sequence += count
			number = src.invoiceNumber(year, sequence)
		}
		usedNumbers[number] = struct{}{}

		inv := types.Invoice{
			ID:             src.NewID(),
			InvoiceNumber:  number,
			InvoiceDate:    src.timeBetween(src.ref.AddDate(0, 0, -365), src.ref).UTC().Format(dateLayout),
			BillingAddress: src.f.Street(),
			BillingCity:    src.f.City(),
			BillingCountry: src.f.CountryAbr(),
			UserID:         user.ID,
			Total:          decimal.Zero,
			CreatedAt:      created,
			UpdatedAt:      updated,
		}
		inv.BillingPostcode = src.f.Zip()
		if countriesWithStates[inv.BillingCountry] {
			inv.BillingState = src.f.State()
		}

		set.invoices = append(set.invoices, inv)
	}
	return set
}

// invoiceNumber renders one of the recognized invoice number patterns.
func (s *Source) invoiceNumber(year, sequence int) string {
	switch s.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("INV-%d-%06d", year, sequence)
	case 1:
		return fmt.Sprintf("INV%d%06d", year, sequence)
	case 2:
		return fmt.Sprintf("%d-INV-%05d", year, sequence)
	default:
		return fmt.Sprintf("I%d%06d", year, sequence)
	}
}
