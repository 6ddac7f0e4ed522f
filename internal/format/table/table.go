// Package table aligns rows of cells into fixed-width columns.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes how one column is laid out.
type Column struct {
	Align Alignment
	// Max caps the column width in cells; 0 means unbounded. Cells wider than
	// Max are truncated with an ellipsis.
	Max int
}

// Gap separates adjacent columns.
const Gap = "  "

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells, ignoring ANSI escapes.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows, columns)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(Gap)
			}
			cell = fit(cell, widths[c])
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(columns) && columns[c].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[i] = b.String()
	}
	return out
}

// Widths returns the resolved width of every column.
func Widths(rows [][]string, columns []Column) []int {
	count := 0
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	widths := make([]int, count)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c := range widths {
		if c < len(columns) && columns[c].Max > 0 && widths[c] > columns[c].Max {
			widths[c] = columns[c].Max
		}
	}
	return widths
}

func fit(cell string, width int) string {
	if ansi.StringWidth(cell) <= width {
		return cell
	}
	if width <= 1 {
		return ansi.Truncate(cell, width, "")
	}
	return ansi.Truncate(cell, width, "…")
}
