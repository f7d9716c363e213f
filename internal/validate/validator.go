package validate

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/toolshop/seedgen/internal/csvstore"
	"github.com/toolshop/seedgen/pkg/types"
)

var (
	idPattern    = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// priceCeiling is the sanity bound on any monetary field.
var priceCeiling = decimal.RequireFromString("999999.99")

// totalTolerance is the allowed rounding drift between a stored
// invoice total and the recomputed item sum.
var totalTolerance = decimal.RequireFromString("0.01")

// requiredFields lists the fields that must be present and non-blank,
// per table.
var requiredFields = map[string][]string{
	types.TableUsers:         {"id", "first_name", "last_name", "email", "role", "created_at", "updated_at"},
	types.TableCategories:    {"id", "name", "slug", "created_at", "updated_at"},
	types.TableBrands:        {"id", "name", "slug", "created_at", "updated_at"},
	types.TableProductImages: {"id", "by_name", "by_url", "source_name", "source_url", "file_name", "title", "created_at", "updated_at"},
	types.TableProducts:      {"id", "name", "description", "price", "category_id", "brand_id", "product_image_id", "created_at", "updated_at"},
	types.TableFavorites:     {"id", "user_id", "product_id", "created_at", "updated_at"},
	types.TableInvoices:      {"id", "invoice_number", "invoice_date", "billing_address", "billing_city", "billing_country", "user_id", "total", "created_at", "updated_at"},
	types.TableInvoiceItems:  {"id", "invoice_id", "product_id", "quantity", "unit_price", "created_at", "updated_at"},
	types.TablePayments:      {"id", "invoice_id", "method", "status", "created_at", "updated_at"},
}

// fkConstraint declares one foreign-key edge. The slice keeps check
// order deterministic so reports are stable.
type fkConstraint struct {
	table    string
	field    string
	refTable string
	nullable bool
}

var fkConstraints = []fkConstraint{
	{types.TableCategories, "parent_id", types.TableCategories, true},
	{types.TableProducts, "category_id", types.TableCategories, false},
	{types.TableProducts, "brand_id", types.TableBrands, false},
	{types.TableProducts, "product_image_id", types.TableProductImages, false},
	{types.TableFavorites, "user_id", types.TableUsers, false},
	{types.TableFavorites, "product_id", types.TableProducts, false},
	{types.TableInvoices, "user_id", types.TableUsers, false},
	{types.TableInvoiceItems, "invoice_id", types.TableInvoices, false},
	{types.TableInvoiceItems, "product_id", types.TableProducts, false},
	{types.TablePayments, "invoice_id", types.TableInvoices, false},
}

// Validator loads a persisted dataset and accumulates violations. It
// only reads the directory; nothing is ever written or mutated.
type Validator struct {
	dir        string
	tables     map[string]*csvstore.Table
	idSets     map[string]map[string]struct{}
	violations []Violation
}

// New returns a Validator for the dataset directory.
func New(dir string) *Validator {
	return &Validator{
		dir:    dir,
		tables: make(map[string]*csvstore.Table),
		idSets: make(map[string]map[string]struct{}),
	}
}

// Run executes every check in order and returns the verdict with the
// full violation inventory.
func (v *Validator) Run() Result {
	v.violations = nil
	v.load()
	v.checkStructure()
	v.checkRequiredFields()
	v.checkTypes()
	v.checkForeignKeys()
	v.checkInvoiceTotals()
	v.checkUniqueEmails()
	v.checkUniqueSlugs()
	v.checkSelfParent()
	v.checkDuplicateIDs()

	return Result{Valid: len(v.violations) == 0, Violations: v.violations}
}

// add appends one violation.
func (v *Validator) add(kind, table, rowID, field, message string, line int) {
	v.violations = append(v.violations, Violation{
		Kind: kind, Table: table, RowID: rowID, Field: field,
		Message: message, Line: line,
	})
}

// load reads every expected table. A missing or unparseable file is a
// violation, not an abort; later checks simply skip absent tables.
func (v *Validator) load() {
	for _, name := range types.TableNames {
		t, err := csvstore.Load(v.dir, name)
		if err != nil {
			if os.IsNotExist(err) {
				v.add(KindMissingFile, name, "N/A", "file",
					fmt.Sprintf("required file not found: %s.csv", name), 0)
			} else {
				v.add(KindInconsistentColumns, name, "N/A", "file",
					fmt.Sprintf("failed to parse: %v", err), 0)
			}
			continue
		}
		v.tables[name] = t
		v.idSets[name] = t.IDs()
	}
}

// checkStructure flags empty tables and rows whose field count differs
// from the header.
func (v *Validator) checkStructure() {
	for _, name := range types.TableNames {
		t, ok := v.tables[name]
		if !ok {
			continue
		}
		if len(t.Rows) == 0 {
			v.add(KindEmptyTable, name, "N/A", "data", "table contains no data", 0)
			continue
		}
		for _, row := range t.Rows {
			if row.FieldCount != len(t.Columns) {
				v.add(KindInconsistentColumns, name, row.Get("id"), "structure",
					fmt.Sprintf("row has %d fields, header has %d", row.FieldCount, len(t.Columns)),
					row.Line)
			}
		}
	}
}

// checkRequiredFields flags missing or blank required values.
func (v *Validator) checkRequiredFields() {
	for _, name := range types.TableNames {
		t, ok := v.tables[name]
		if !ok {
			continue
		}
		for _, row := range t.Rows {
			for _, field := range requiredFields[name] {
				if strings.TrimSpace(row.Get(field)) == "" {
					v.add(KindMissingRequiredField, name, row.Get("id"), field,
						"required field is empty or missing", row.Line)
				}
			}
		}
	}
}

// checkTypes validates formats per table: identifier shape everywhere,
// then emails, enums, prices, booleans, and integers where declared.
func (v *Validator) checkTypes() {
	for _, name := range types.TableNames {
		t, ok := v.tables[name]
		if !ok {
			continue
		}
		for _, row := range t.Rows {
			v.checkID(name, row)

			switch name {
			case types.TableUsers:
				v.checkEmail(name, row, "email")
				v.checkEnum(name, row, "role", types.UserRoles)
			case types.TableProducts:
				v.checkPrice(name, row, "price")
				v.checkBoolean(name, row, "in_stock")
				v.checkBoolean(name, row, "is_location_offer")
				v.checkBoolean(name, row, "is_rental")
				v.checkInteger(name, row, "stock")
			case types.TableInvoiceItems:
				v.checkInteger(name, row, "quantity")
				v.checkPrice(name, row, "unit_price")
			case types.TableInvoices:
				v.checkPrice(name, row, "total")
			case types.TablePayments:
				v.checkEnum(name, row, "method", types.PaymentMethods)
				v.checkEnum(name, row, "status", types.PaymentStatuses)
			}
		}
	}
}

func (v *Validator) checkID(table string, row csvstore.Row) {
	id := row.Get("id")
	if id != "" && !idPattern.MatchString(id) {
		v.add(KindInvalidULID, table, id, "id",
			fmt.Sprintf("invalid identifier format: %s", id), row.Line)
	}
}

func (v *Validator) checkEmail(table string, row csvstore.Row, field string) {
	value := row.Get(field)
	if value != "" && !emailPattern.MatchString(value) {
		v.add(KindInvalidEmail, table, row.Get("id"), field,
			fmt.Sprintf("invalid email format: %s", value), row.Line)
	}
}

func (v *Validator) checkEnum(table string, row csvstore.Row, field string, valid []string) {
	value := row.Get(field)
	if value == "" {
		return
	}
	for _, ok := range valid {
		if value == ok {
			return
		}
	}
	v.add(KindInvalidEnum, table, row.Get("id"), field,
		fmt.Sprintf("invalid %s value: %s", field, value), row.Line)
}

func (v *Validator) checkPrice(table string, row csvstore.Row, field string) {
	value := row.Get(field)
	if value == "" {
		return
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		v.add(KindInvalidPrice, table, row.Get("id"), field,
			fmt.Sprintf("invalid price format: %s", value), row.Line)
		return
	}
	switch {
	case price.IsNegative():
		v.add(KindNegativePrice, table, row.Get("id"), field,
			fmt.Sprintf("price cannot be negative: %s", value), row.Line)
	case price.GreaterThan(priceCeiling):
		v.add(KindPriceTooHigh, table, row.Get("id"), field,
			fmt.Sprintf("price too high: %s", value), row.Line)
	}
}

func (v *Validator) checkBoolean(table string, row csvstore.Row, field string) {
	value := row.Get(field)
	if value == "" {
		return
	}
	switch strings.ToLower(value) {
	case "true", "false", "1", "0":
	default:
		v.add(KindInvalidBoolean, table, row.Get("id"), field,
			fmt.Sprintf("invalid boolean value: %s", value), row.Line)
	}
}

func (v *Validator) checkInteger(table string, row csvstore.Row, field string) {
	value := row.Get(field)
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		v.add(KindInvalidInteger, table, row.Get("id"), field,
			fmt.Sprintf("invalid integer format: %s", value), row.Line)
		return
	}
	if n < 0 {
		v.add(KindNegativeInteger, table, row.Get("id"), field,
			fmt.Sprintf("integer cannot be negative: %d", n), row.Line)
	}
}

// checkForeignKeys verifies every declared edge: blank non-nullable
// values, references into absent tables, and unresolvable identifiers.
func (v *Validator) checkForeignKeys() {
	for _, fk := range fkConstraints {
		t, ok := v.tables[fk.table]
		if !ok {
			continue
		}
		for _, row := range t.Rows {
			value := strings.TrimSpace(row.Get(fk.field))
			if value == "" {
				if !fk.nullable {
					v.add(KindNullForeignKey, fk.table, row.Get("id"), fk.field,
						"foreign key cannot be NULL", row.Line)
				}
				continue
			}

			refIDs, ok := v.idSets[fk.refTable]
			if !ok {
				v.add(KindMissingReferenceTable, fk.table, row.Get("id"), fk.field,
					fmt.Sprintf("referenced table %q not found", fk.refTable), row.Line)
				continue
			}
			if _, found := refIDs[value]; !found {
				v.add(KindBrokenForeignKey, fk.table, row.Get("id"), fk.field,
					fmt.Sprintf("referenced ID %q not found in table %q", value, fk.refTable), row.Line)
			}
		}
	}
}

// checkInvoiceTotals recomputes each invoice total from its items and
// compares against the stored value within the rounding tolerance.
func (v *Validator) checkInvoiceTotals() {
	invoices, ok := v.tables[types.TableInvoices]
	if !ok {
		return
	}
	items, ok := v.tables[types.TableInvoiceItems]
	if !ok {
		return
	}

	computed := make(map[string]decimal.Decimal)
	for _, row := range items.Rows {
		quantity, err := strconv.Atoi(row.Get("quantity"))
		if err != nil {
			continue // already flagged by checkTypes
		}
		unitPrice, err := decimal.NewFromString(row.Get("unit_price"))
		if err != nil {
			continue
		}
		invoiceID := row.Get("invoice_id")
		line := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		computed[invoiceID] = computed[invoiceID].Add(line)
	}

	for _, row := range invoices.Rows {
		stored, err := decimal.NewFromString(row.Get("total"))
		if err != nil {
			continue
		}
		want := computed[row.Get("id")]
		if stored.Sub(want).Abs().GreaterThan(totalTolerance) {
			v.add(KindInvoiceTotalMismatch, types.TableInvoices, row.Get("id"), "total",
				fmt.Sprintf("recorded total %s does not match calculated total %s", stored, want),
				row.Line)
		}
	}
}

// checkUniqueEmails flags every repeat of a case-folded email after
// its first occurrence.
func (v *Validator) checkUniqueEmails() {
	users, ok := v.tables[types.TableUsers]
	if !ok {
		return
	}
	seen := make(map[string]struct{}, len(users.Rows))
	for _, row := range users.Rows {
		email := strings.ToLower(row.Get("email"))
		if _, dup := seen[email]; dup {
			v.add(KindDuplicateEmail, types.TableUsers, row.Get("id"), "email",
				fmt.Sprintf("duplicate email: %s", email), row.Line)
			continue
		}
		seen[email] = struct{}{}
	}
}

// checkUniqueSlugs enforces slug uniqueness within categories and
// within brands, independently.
func (v *Validator) checkUniqueSlugs() {
	for _, name := range []string{types.TableCategories, types.TableBrands} {
		t, ok := v.tables[name]
		if !ok {
			continue
		}
		seen := make(map[string]struct{}, len(t.Rows))
		for _, row := range t.Rows {
			slug := row.Get("slug")
			if _, dup := seen[slug]; dup {
				v.add(KindDuplicateSlug, name, row.Get("id"), "slug",
					fmt.Sprintf("duplicate slug: %s", slug), row.Line)
				continue
			}
			seen[slug] = struct{}{}
		}
	}
}

// checkSelfParent flags categories that reference themselves. Deeper
// cycles are out of scope; generation orders parents before children.
func (v *Validator) checkSelfParent() {
	categories, ok := v.tables[types.TableCategories]
	if !ok {
		return
	}
	for _, row := range categories.Rows {
		if parent := row.Get("parent_id"); parent != "" && parent == row.Get("id") {
			v.add(KindCircularReference, types.TableCategories, row.Get("id"), "parent_id",
				"category cannot be its own parent", row.Line)
		}
	}
}

// checkDuplicateIDs flags repeated ids within each table.
func (v *Validator) checkDuplicateIDs() {
	for _, name := range types.TableNames {
		t, ok := v.tables[name]
		if !ok {
			continue
		}
		seen := make(map[string]struct{}, len(t.Rows))
		for _, row := range t.Rows {
			id := row.Get("id")
			if _, dup := seen[id]; dup {
				v.add(KindDuplicateID, name, id, "id", "duplicate ID found", row.Line)
				continue
			}
			seen[id] = struct{}{}
		}
	}
}
