package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a left-aligned text table with a styled header row.
type Table struct {
	headers []string
	rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row appends one row. Cells may be styled; widths ignore escape codes.
// Missing cells render empty, extra cells are dropped.
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if n := lipgloss.Width(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(t.headers, widths)))
	b.WriteByte('\n')
	for _, row := range t.rows {
		b.WriteString(formatRow(row, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
