package ui

import (
	"strings"
	"unicode/utf8"
)

// Column is one table column; Width counts runes.
type Column struct {
	Title string
	Width int
}

// Row holds the cell values of one table row.
type Row []string

// Table renders rows of API results with fixed-width columns.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // highlighted row, -1 for none
}

// NewTable returns an empty table with no row selected.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// AddRow appends r.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Render returns the table as a string. Cells are padded by hand rather
// than with lipgloss Width so long values never wrap onto a second line.
func (t *Table) Render() string {
	var sb strings.Builder

	line := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		line[i] = styleHeader.Render(fit(col.Title, col.Width))
	}
	sb.WriteString(strings.Join(line, " ") + "\n")

	for i, col := range t.Columns {
		line[i] = StyleMeta.Render(strings.Repeat("-", col.Width))
	}
	sb.WriteString(strings.Join(line, " ") + "\n")

	for i, row := range t.Rows {
		style := styleCell
		if i == t.SelIdx {
			style = styleSelected
		}
		for j, col := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			line[j] = style.Render(fit(val, col.Width))
		}
		sb.WriteString(strings.Join(line, " ") + "\n")
	}

	return sb.String()
}

// fit left-aligns s in exactly width runes, cutting it if longer.
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

// KeyValueBlock renders pairs in a rounded box under an optional title.
func KeyValueBlock(title string, pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		if n := utf8.RuneCountInString(p[0]) + 1; n > keyWidth {
			keyWidth = n
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title) + "\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fit(p[0]+":", keyWidth))
		sb.WriteString("  " + key + " " + styleValue.Render(p[1]) + "\n")
	}
	return styleBox.Render(strings.TrimRight(sb.String(), "\n"))
}
