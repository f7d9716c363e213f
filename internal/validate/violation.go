// Package validate checks a persisted dataset for structural, type,
// referential, and business-rule consistency. All checks are fail-soft:
// a single pass collects every violation instead of stopping at the
// first one, and nothing is ever coerced or repaired.
package validate

import "fmt"

// Violation kinds, in the order the checks run.
const (
	KindMissingFile           = "MISSING_FILE"
	KindEmptyTable            = "EMPTY_TABLE"
	KindInconsistentColumns   = "INCONSISTENT_COLUMNS"
	KindMissingRequiredField  = "MISSING_REQUIRED_FIELD"
	KindInvalidULID           = "INVALID_ULID"
	KindInvalidEmail          = "INVALID_EMAIL"
	KindInvalidEnum           = "INVALID_ENUM"
	KindInvalidPrice          = "INVALID_PRICE"
	KindNegativePrice         = "NEGATIVE_PRICE"
	KindPriceTooHigh          = "PRICE_TOO_HIGH"
	KindInvalidBoolean        = "INVALID_BOOLEAN"
	KindInvalidInteger        = "INVALID_INTEGER"
	KindNegativeInteger       = "NEGATIVE_INTEGER"
	KindNullForeignKey        = "NULL_FOREIGN_KEY"
	KindMissingReferenceTable = "MISSING_REFERENCE_TABLE"
	KindBrokenForeignKey      = "BROKEN_FOREIGN_KEY"
	KindInvoiceTotalMismatch  = "INVOICE_TOTAL_MISMATCH"
	KindDuplicateEmail        = "DUPLICATE_EMAIL"
	KindDuplicateSlug         = "DUPLICATE_SLUG"
	KindCircularReference     = "CIRCULAR_REFERENCE"
	KindDuplicateID           = "DUPLICATE_ID"
)

// Violation is one consistency error with enough context to locate the
// offending row in its source file.
type Violation struct {
	Kind    string
	Table   string
	RowID   string
	Field   string
	Message string
	Line    int // source line in the CSV file; 0 for table-level errors
}

// String renders the violation for reports and logs.
func (v Violation) String() string {
	s := fmt.Sprintf("[%s] %s.%s: %s (ID: %s)", v.Kind, v.Table, v.Field, v.Message, v.RowID)
	if v.Line > 0 {
		s += fmt.Sprintf(" (row %d)", v.Line)
	}
	return s
}

// Result is a validation verdict: Valid is true only when Violations
// is empty.
type Result struct {
	Valid      bool
	Violations []Violation
}

// ByKind groups violations by kind, preserving first-seen kind order.
func (r Result) ByKind() ([]string, map[string][]Violation) {
	var order []string
	groups := make(map[string][]Violation)
	for _, v := range r.Violations {
		if _, seen := groups[v.Kind]; !seen {
			order = append(order, v.Kind)
		}
		groups[v.Kind] = append(groups[v.Kind], v)
	}
	return order, groups
}
