package tabula

import "fmt"

// Table is an immutable rectangular grid of text cells with name-based
// lookups for its header row (row 0) and label column (column 0).
//
// The backing storage is a row-major flat sequence whose length is always an
// exact multiple of the width. All mutation happens inside construction;
// accessors return copies, never views into the backing storage.
type Table struct {
	name  string
	cells []string
	width int

	// Lookups are derived from row 0 / column 0 at construction and never
	// mutated afterwards. First occurrence wins on duplicate text.
	columnIndex map[string]int
	rowIndex    map[string]int
}

// New builds a Table directly from a flat, row-major cell sequence and a
// column count. It never fails: a negative width is treated as 0, a width of
// 0 produces the empty table regardless of cells, and a short final row is
// right-padded with empty cells so the rectangularity invariant holds.
//
// The cell sequence is copied; the caller keeps ownership of its slice.
func New(name string, cells []string, width int) *Table {
	t := &Table{name: name, width: width}
	if t.width <= 0 {
		t.width = 0
	}
	if t.width > 0 {
		t.cells = make([]string, len(cells), len(cells)+t.width)
		copy(t.cells, cells)
		for len(t.cells)%t.width != 0 {
			t.cells = append(t.cells, "")
		}
	}
	t.buildLookups()
	return t
}

// buildLookups derives the header and label lookups from the padded cells.
// On duplicate header or label text the first occurrence wins; later
// duplicates stay addressable by index only.
func (t *Table) buildLookups() {
	t.columnIndex = make(map[string]int, t.width)
	t.rowIndex = make(map[string]int, t.Height())
	if t.Height() == 0 {
		return
	}
	for col := 0; col < t.width; col++ {
		header := t.cells[col]
		if _, seen := t.columnIndex[header]; !seen {
			t.columnIndex[header] = col
		}
	}
	for row := 0; row < t.Height(); row++ {
		label := t.cells[row*t.width]
		if _, seen := t.rowIndex[label]; !seen {
			t.rowIndex[label] = row
		}
	}
}

// Name returns the table's identifying label.
func (t *Table) Name() string {
	return t.name
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return t.width
}

// Height returns the number of rows. It is derived from the cell count and
// width rather than stored, so it can never drift out of sync.
func (t *Table) Height() int {
	if t.width == 0 {
		return 0
	}
	return len(t.cells) / t.width
}

// Cells returns a copy of the row-major flat cell sequence.
func (t *Table) Cells() []string {
	cells := make([]string, len(t.cells))
	copy(cells, t.cells)
	return cells
}

// Cell returns the cell at the intersection of col and row. The column
// selector resolves against the header row, the row selector against the
// label column; numeric selectors are bounds-checked. Errors wrap
// ErrOutOfRange or ErrNotFound.
func (t *Table) Cell(col, row Selector) (string, error) {
	c, err := t.resolveColumn(col)
	if err != nil {
		return "", err
	}
	r, err := t.resolveRow(row)
	if err != nil {
		return "", err
	}
	return t.cells[r*t.width+c], nil
}

// Row returns a fresh copy of one row's cells, in column order.
func (t *Table) Row(row Selector) ([]string, error) {
	r, err := t.resolveRow(row)
	if err != nil {
		return nil, err
	}
	cells := make([]string, t.width)
	for col := range cells {
		if cells[col], err = t.Cell(Index(col), Index(r)); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// Column returns a fresh copy of one column's cells, in row order.
func (t *Table) Column(col Selector) ([]string, error) {
	c, err := t.resolveColumn(col)
	if err != nil {
		return nil, err
	}
	cells := make([]string, t.Height())
	for row := range cells {
		if cells[row], err = t.Cell(Index(c), Index(row)); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// Headers returns a copy of the header row (row 0), or nil for the empty
// table.
func (t *Table) Headers() []string {
	if t.Height() == 0 {
		return nil
	}
	row, _ := t.Row(Index(0))
	return row
}

// Labels returns a copy of the label column (column 0), or nil for the
// empty table.
func (t *Table) Labels() []string {
	if t.width == 0 {
		return nil
	}
	col, _ := t.Column(Index(0))
	return col
}

func (t *Table) resolveColumn(sel Selector) (int, error) {
	if sel.byName {
		col, ok := t.columnIndex[sel.name]
		if !ok {
			return 0, fmt.Errorf("%w: table %q has no column %s", ErrNotFound, t.name, sel)
		}
		return col, nil
	}
	if sel.index < 0 || sel.index >= t.width {
		return 0, fmt.Errorf("%w: column %d of table %q (width %d)", ErrOutOfRange, sel.index, t.name, t.width)
	}
	return sel.index, nil
}

func (t *Table) resolveRow(sel Selector) (int, error) {
	if sel.byName {
		row, ok := t.rowIndex[sel.name]
		if !ok {
			return 0, fmt.Errorf("%w: table %q has no row %s", ErrNotFound, t.name, sel)
		}
		return row, nil
	}
	if sel.index < 0 || sel.index >= t.Height() {
		return 0, fmt.Errorf("%w: row %d of table %q (height %d)", ErrOutOfRange, sel.index, t.name, t.Height())
	}
	return sel.index, nil
}
