package tabula

import "strconv"

// Selector addresses one row or one column, either by zero-based numeric
// index or by the name recorded in the header row / label column. Keeping
// both addressing modes in one value keeps bounds checking and lookup
// failure handling in a single place instead of spread across overloads.
type Selector struct {
	name   string
	index  int
	byName bool
}

// Index selects a row or column by zero-based position.
func Index(i int) Selector {
	return Selector{index: i}
}

// Name selects a column by its header-row text, or a row by its
// label-column text.
func Name(s string) Selector {
	return Selector{name: s, byName: true}
}

// String renders the selector for error messages.
func (s Selector) String() string {
	if s.byName {
		return strconv.Quote(s.name)
	}
	return strconv.Itoa(s.index)
}
