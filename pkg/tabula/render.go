package tabula

import "strings"

// Serialize renders the table in its persistence format: every cell is
// followed by a trailing comma (the last cell of a row included), cells
// containing a comma or a double quote have embedded quotes doubled and are
// wrapped in quotes, and rows are joined by newlines.
//
// The write format is deliberately more verbose than what the parser
// requires — the parser tolerates a missing trailing comma, Serialize always
// emits one — so that Parse(t.Serialize()) reproduces t exactly.
func (t *Table) Serialize() string {
	var sb strings.Builder
	for row := 0; row < t.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < t.width; col++ {
			writeField(&sb, t.cells[row*t.width+col])
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// writeField writes one cell, quote-wrapping it when it contains a comma or
// a double quote and doubling any embedded quotes first.
func writeField(sb *strings.Builder, value string) {
	if !strings.ContainsAny(value, ",\"") {
		sb.WriteString(value)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			sb.WriteString(`""`)
		} else {
			sb.WriteByte(value[i])
		}
	}
	sb.WriteByte('"')
}

// String renders a human-readable view for diagnostics: cells containing a
// comma are quote-wrapped (without doubling embedded quotes), columns are
// joined by ", " and rows by newlines. It is not a round-trip format; use
// Serialize for persistence.
func (t *Table) String() string {
	var sb strings.Builder
	for row := 0; row < t.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < t.width; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			cell := t.cells[row*t.width+col]
			if strings.Contains(cell, ",") {
				sb.WriteByte('"')
				sb.WriteString(cell)
				sb.WriteByte('"')
			} else {
				sb.WriteString(cell)
			}
		}
	}
	return sb.String()
}
