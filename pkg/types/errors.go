package types

import "errors"

// Standard errors returned across seedgen packages.
var (
	// ErrInvalidConfig indicates the generation config failed validation.
	ErrInvalidConfig = errors.New("invalid generation config")

	// ErrSetClosed indicates a backfill was attempted on an already
	// closed invoice set.
	ErrSetClosed = errors.New("invoice set already closed")

	// ErrSetOpen indicates rows were requested from an invoice set
	// whose totals have not been backfilled yet.
	ErrSetOpen = errors.New("invoice set not closed")

	// ErrValidationFailed indicates the persisted dataset contains at
	// least one consistency violation.
	ErrValidationFailed = errors.New("dataset validation failed")

	// ErrTableUnknown indicates a table name outside the nine known tables.
	ErrTableUnknown = errors.New("unknown table")
)
