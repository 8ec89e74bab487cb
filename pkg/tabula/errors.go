package tabula

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped, with context) by Table accessors.
// Match them with errors.Is.
var (
	// ErrOutOfRange reports a numeric column or row index outside the
	// table's current bounds.
	ErrOutOfRange = errors.New("tabula: index out of range")

	// ErrNotFound reports a name with no entry in the header or label
	// lookup.
	ErrNotFound = errors.New("tabula: name not found")

	// ErrRagged reports scanner output whose cell count is not an exact
	// multiple of its width. It indicates an internal invariant violation;
	// well-formed scans can never produce it.
	ErrRagged = errors.New("tabula: cell count is not a multiple of width")
)

// ParseError reports a failure to turn raw text into a Table. No partial
// table accompanies it.
type ParseError struct {
	// Table is the name the table was being constructed under.
	Table string
	// Err is the underlying cause.
	Err error
}

// Error returns a formatted message naming the table.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tabula: parsing table %q: %v", e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
