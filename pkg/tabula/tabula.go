// Package tabula reads and writes a comma-delimited tabular text dialect and
// exposes the data as an immutable rectangular grid.
//
// The dialect is the one used for game data sheets: fields are separated by
// commas, fields may be quoted with double quotes (doubled quotes escape a
// literal quote), lines whose first two characters are "//" are comments,
// lines that contain only commas and whitespace are skipped, tabs fold to
// spaces, and CRLF/CR line endings are accepted. Short rows are right-padded
// with empty cells so every table is rectangular.
//
// Row 0 is the header row and column 0 is the label column: both feed
// name-based lookups, so cells can be addressed either by numeric index or
// by name (see Selector).
//
//	t, err := tabula.Parse("items", "Name,Value\nSword,10\nShield,5\n")
//	if err != nil {
//	    // handle error
//	}
//	v, _ := t.Cell(tabula.Name("Value"), tabula.Name("Sword")) // "10"
//
// # Thread Safety
//
// Parsing is safe for concurrent use: each call builds its own Table with no
// shared mutable state. A constructed Table is read-only, so any number of
// goroutines may query it concurrently.
package tabula

import (
	"io"

	"github.com/softgrid/tabula/internal/scanner"
)

// Parse builds a Table from raw text. The name identifies the table (it is
// typically derived from the source filename) and appears in errors.
//
// Input with no surviving rows — empty text, only comments, only blank
// lines — produces the empty table: width 0, height 0, no cells. Tolerable
// irregularities (missing trailing comma, a quote left open at end of line)
// are normalized silently and never fail the parse.
func Parse(name, input string) (*Table, error) {
	grid := scanner.Scan(input)
	if grid.Width > 0 && len(grid.Cells)%grid.Width != 0 {
		return nil, &ParseError{Table: name, Err: ErrRagged}
	}
	return New(name, grid.Cells, grid.Width), nil
}

// ParseReader builds a Table from an io.Reader. The entire input is read
// before parsing; a read failure is reported as a *ParseError carrying the
// table name.
func ParseReader(name string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Table: name, Err: err}
	}
	return Parse(name, string(data))
}
