package validate

import (
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolshop/seedgen/internal/csvstore"
	"github.com/toolshop/seedgen/pkg/types"
)

const fixtureStamp = "2024-06-01 10:00:00"

// testID returns a well-formed 26-character identifier; digits are all
// members of the identifier alphabet.
func testID(n int) string { return fmt.Sprintf("%026d", n) }

// fixture is a minimal consistent dataset: one row per table plus a
// category parent-child pair and a two-item invoice.
type fixture struct {
	users      []types.User
	categories []types.Category
	brands     []types.Brand
	images     []types.ProductImage
	products   []types.Product
	favorites  []types.Favorite
	invoices   []types.Invoice
	items      []types.InvoiceItem
	payments   []types.Payment
}

func newFixture() *fixture {
	var (
		userID    = testID(1)
		rootID    = testID(2)
		childID   = testID(3)
		brandID   = testID(4)
		imageID   = testID(5)
		productID = testID(6)
		favID     = testID(7)
		invoiceID = testID(8)
		item1ID   = testID(9)
		item2ID   = testID(10)
		payID     = testID(11)
	)

	return &fixture{
		users: []types.User{{
			ID: userID, FirstName: "Jane", LastName: "Miller",
			Street: "12 Oak St", City: "Springfield", Country: "US",
			PostalCode: "12345", Phone: "555-0100", DOB: "1985-03-14",
			Email: "jane.miller@example.com", Role: types.RoleCustomer,
			Enabled: true, CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		categories: []types.Category{
			{ID: rootID, Name: "Hand Tools", Slug: "hand-tools",
				CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp},
			{ID: childID, Name: "Hammers", Slug: "hammers", ParentID: rootID,
				CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp},
		},
		brands: []types.Brand{{
			ID: brandID, Name: "ForgeCraft", Slug: "forgecraft",
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		images: []types.ProductImage{{
			ID: imageID, ByName: "Alex Reed", ByURL: "https://unsplash.com/@alexreed",
			SourceName: "Unsplash", SourceURL: "https://images.unsplash.com/photos/1/hammers_main.jpg",
			FileName: "hammers_main.jpg", Title: "Hammers - Professional Tool Photography",
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		products: []types.Product{{
			ID: productID, Name: "ForgeCraft Claw Hammer",
			Description: "A dependable claw hammer for framing work.",
			Price:       decimal.RequireFromString("10.00"),
			CategoryID:  childID, BrandID: brandID, ProductImageID: imageID,
			InStock: true, Stock: 25,
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		favorites: []types.Favorite{{
			ID: favID, UserID: userID, ProductID: productID,
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		invoices: []types.Invoice{{
			ID: invoiceID, InvoiceNumber: "INV-2024-000001", InvoiceDate: "2024-05-20",
			BillingAddress: "12 Oak St", BillingCity: "Springfield",
			BillingCountry: "US", BillingPostcode: "12345", UserID: userID,
			Total:     decimal.RequireFromString("25.00"),
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
		items: []types.InvoiceItem{
			{ID: item1ID, InvoiceID: invoiceID, ProductID: productID,
				Quantity: 2, UnitPrice: decimal.RequireFromString("10.00"),
				CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp},
			{ID: item2ID, InvoiceID: invoiceID, ProductID: productID,
				Quantity: 1, UnitPrice: decimal.RequireFromString("5.00"),
				CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp},
		},
		payments: []types.Payment{{
			ID: payID, InvoiceID: invoiceID, Method: types.MethodCreditCard,
			Status: types.StatusSuccess, ReferenceID: "CC123456789012",
			CreatedAt: fixtureStamp, UpdatedAt: fixtureStamp,
		}},
	}
}

// write persists the fixture to dir, one CSV per table.
func (f *fixture) write(t *testing.T, dir string) {
	t.Helper()

	write := func(table string, rows [][]string) {
		require.NoError(t, csvstore.Write(dir, table, types.Columns(table), rows))
	}

	rows := make([][]string, 0)
	for _, r := range f.users {
		rows = append(rows, r.Row())
	}
	write(types.TableUsers, rows)

	rows = rows[:0]
	for _, r := range f.categories {
		rows = append(rows, r.Row())
	}
	write(types.TableCategories, rows)

	rows = rows[:0]
	for _, r := range f.brands {
		rows = append(rows, r.Row())
	}
	write(types.TableBrands, rows)

	rows = rows[:0]
	for _, r := range f.images {
		rows = append(rows, r.Row())
	}
	write(types.TableProductImages, rows)

	rows = rows[:0]
	for _, r := range f.products {
		rows = append(rows, r.Row())
	}
	write(types.TableProducts, rows)

	rows = rows[:0]
	for _, r := range f.favorites {
		rows = append(rows, r.Row())
	}
	write(types.TableFavorites, rows)

	rows = rows[:0]
	for _, r := range f.invoices {
		rows = append(rows, r.Row())
	}
	write(types.TableInvoices, rows)

	rows = rows[:0]
	for _, r := range f.items {
		rows = append(rows, r.Row())
	}
	write(types.TableInvoiceItems, rows)

	rows = rows[:0]
	for _, r := range f.payments {
		rows = append(rows, r.Row())
	}
	write(types.TablePayments, rows)
}

// kinds extracts the violation kinds of a result in order.
func kinds(r Result) []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Kind)
	}
	return out
}

func TestValidDatasetPasses(t *testing.T) {
	dir := t.TempDir()
	newFixture().write(t, dir)

	result := New(dir).Run()
	assert.True(t, result.Valid, "unexpected violations: %v", result.Violations)
	assert.Empty(t, result.Violations)
}

func TestMissingFile(t *testing.T) {
	dir := t.TempDir()
	newFixture().write(t, dir)
	require.NoError(t, os.Remove(csvstore.Path(dir, types.TablePayments)))

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindMissingFile, result.Violations[0].Kind)
	assert.Equal(t, types.TablePayments, result.Violations[0].Table)
}

func TestBrokenForeignKey(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.products[0].CategoryID = testID(99)
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1, "only the broken edge is flagged: %v", result.Violations)

	v := result.Violations[0]
	assert.Equal(t, KindBrokenForeignKey, v.Kind)
	assert.Equal(t, types.TableProducts, v.Table)
	assert.Equal(t, "category_id", v.Field)
	assert.Equal(t, f.products[0].ID, v.RowID)
}

func TestDuplicateEmailFlagsSecondOccurrence(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	second := f.users[0]
	second.ID = testID(50)
	second.Email = "JANE.MILLER@example.com" // differs only by case
	f.users = append(f.users, second)
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)

	v := result.Violations[0]
	assert.Equal(t, KindDuplicateEmail, v.Kind)
	assert.Equal(t, second.ID, v.RowID, "the second occurrence is the violation")
}

func TestNullForeignKey(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.favorites[0].UserID = ""
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	// Blank user_id is both a missing required field and a null FK.
	assert.Contains(t, kinds(result), KindMissingRequiredField)
	assert.Contains(t, kinds(result), KindNullForeignKey)
}

func TestNullableParentAllowed(t *testing.T) {
	dir := t.TempDir()
	newFixture().write(t, dir)

	result := New(dir).Run()
	assert.True(t, result.Valid, "blank category parent_id must not be flagged")
}

func TestInvoiceTotalMismatch(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.invoices[0].Total = decimal.RequireFromString("30.00")
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindInvoiceTotalMismatch, result.Violations[0].Kind)
	assert.Equal(t, f.invoices[0].ID, result.Violations[0].RowID)
}

func TestInvoiceTotalWithinTolerance(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.invoices[0].Total = decimal.RequireFromString("25.01")
	f.write(t, dir)

	result := New(dir).Run()
	assert.True(t, result.Valid, "one cent of rounding drift is tolerated")
}

func TestFieldFormats(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*fixture)
		wantKind string
	}{
		{
			name:     "malformed identifier",
			mutate:   func(f *fixture) { f.brands[0].ID = "not-an-id" },
			wantKind: KindInvalidULID,
		},
		{
			name:     "identifier with excluded letters",
			mutate:   func(f *fixture) { f.brands[0].ID = "ILOU00000000000000000000001"[:26] },
			wantKind: KindInvalidULID,
		},
		{
			name:     "malformed email",
			mutate:   func(f *fixture) { f.users[0].Email = "not-an-email" },
			wantKind: KindInvalidEmail,
		},
		{
			name:     "unknown role",
			mutate:   func(f *fixture) { f.users[0].Role = "superuser" },
			wantKind: KindInvalidEnum,
		},
		{
			name:     "unknown payment method",
			mutate:   func(f *fixture) { f.payments[0].Method = "CHEQUE" },
			wantKind: KindInvalidEnum,
		},
		{
			name:     "negative price",
			mutate:   func(f *fixture) { f.products[0].Price = decimal.RequireFromString("-1.00") },
			wantKind: KindNegativePrice,
		},
		{
			name:     "price above ceiling",
			mutate:   func(f *fixture) { f.products[0].Price = decimal.RequireFromString("1000000.00") },
			wantKind: KindPriceTooHigh,
		},
		{
			name:     "negative quantity",
			mutate:   func(f *fixture) { f.items[0].Quantity = -1 },
			wantKind: KindNegativeInteger,
		},
		{
			name:     "negative stock",
			mutate:   func(f *fixture) { f.products[0].Stock = -5 },
			wantKind: KindNegativeInteger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			f := newFixture()
			tt.mutate(f)
			f.write(t, dir)

			result := New(dir).Run()
			require.False(t, result.Valid)
			assert.Contains(t, kinds(result), tt.wantKind)
		})
	}
}

func TestEmptyTable(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.favorites = nil
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindEmptyTable, result.Violations[0].Kind)
	assert.Equal(t, types.TableFavorites, result.Violations[0].Table)
}

func TestDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.categories[1].Slug = f.categories[0].Slug
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindDuplicateSlug, result.Violations[0].Kind)
	assert.Equal(t, f.categories[1].ID, result.Violations[0].RowID)
}

func TestSelfParent(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	f.categories[1].ParentID = f.categories[1].ID
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindCircularReference, result.Violations[0].Kind)
}

func TestDuplicateID(t *testing.T) {
	dir := t.TempDir()
	f := newFixture()
	second := f.brands[0]
	second.Slug = "forgecraft-2"
	second.Name = "ForgeCraft Two"
	f.brands = append(f.brands, second)
	f.write(t, dir)

	result := New(dir).Run()
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, KindDuplicateID, result.Violations[0].Kind)
	assert.Equal(t, types.TableBrands, result.Violations[0].Table)
}

func TestInconsistentColumns(t *testing.T) {
	dir := t.TempDir()
	newFixture().write(t, dir)

	// Append a short row to brands.
	path := csvstore.Path(dir, types.TableBrands)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = file.WriteString(testID(60) + ",Stubby\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	result := New(dir).Run()
	require.False(t, result.Valid)
	assert.Contains(t, kinds(result), KindInconsistentColumns)
}
