// Package scanner converts raw delimited text into a rectangular cell grid.
//
// The dialect is comma-delimited with double-quote quoting ("" inside a
// quoted field escapes one literal quote), // comment lines, and blank-row
// filtering (lines that are empty once commas and spaces are removed).
// Tabs never delimit; they fold to single spaces before splitting.
//
// Scanning is a single forward pass per line with one cursor and a growable
// output buffer. The result is always rectangular: short rows are
// right-padded with empty cells to the width of the widest surviving row.
package scanner

import "strings"

// Grid is the flat, row-major result of a scan.
// len(Cells) is always an exact multiple of Width.
type Grid struct {
	Cells []string
	Width int
}

// Height returns the number of rows in the grid.
func (g Grid) Height() int {
	if g.Width == 0 {
		return 0
	}
	return len(g.Cells) / g.Width
}

// Scan converts raw text into a rectangular grid. It is total: every input
// produces a defined grid, and input with no surviving rows (empty text,
// only comments, only blank lines) produces the empty grid with width 0.
func Scan(input string) Grid {
	rows := splitRows(input)

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return Grid{}
	}

	cells := make([]string, 0, len(rows)*width)
	for _, row := range rows {
		cells = append(cells, row...)
		for pad := len(row); pad < width; pad++ {
			cells = append(cells, "")
		}
	}
	return Grid{Cells: cells, Width: width}
}

// splitRows normalizes line endings to LF, folds tabs to spaces, then splits
// the input into rows of cells, dropping comment and blank lines before any
// cell splitting happens.
func splitRows(input string) [][]string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.ReplaceAll(normalized, "\t", " ")

	var rows [][]string
	for _, line := range strings.Split(normalized, "\n") {
		if skipLine(line) {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

var blankStripper = strings.NewReplacer(",", "", " ", "")

// skipLine reports whether a line is a comment or blank. A comment line is
// one whose first two bytes are "//" — leading whitespace is not trimmed
// first, so " //x" is data, not a comment. A blank line is one with nothing
// left after removing every comma and space.
func skipLine(line string) bool {
	if strings.HasPrefix(line, "//") {
		return true
	}
	return blankStripper.Replace(line) == ""
}

// splitLine splits one line into cells with a single forward scan and one
// boolean quote mode. Outside quotes a comma closes the current cell and a
// quote enters quote mode; inside quotes a doubled quote emits one literal
// quote and a single quote exits quote mode. Commas inside quotes are data.
//
// At end of line a non-empty buffer flushes as the final cell; an empty
// buffer adds nothing, so a line ending exactly on a comma yields no phantom
// trailing cell. A quote left open at end of line is not an error: the
// buffered text flushes as the final cell. Both the buffer and the quote
// flag are line-scoped, so state never leaks between lines.
func splitLine(line string) []string {
	var (
		cells  []string
		buf    strings.Builder
		quoted bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted:
			if c != '"' {
				buf.WriteByte(c)
				break
			}
			if i+1 < len(line) && line[i+1] == '"' {
				buf.WriteByte('"')
				i++
			} else {
				quoted = false
			}
		case c == '"':
			quoted = true
		case c == ',':
			cells = append(cells, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	if buf.Len() > 0 {
		cells = append(cells, buf.String())
	}
	return cells
}
