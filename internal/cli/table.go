package cli

import (
	"strings"
)

// Table renders rows under a header with columns padded to a common width.
// Cells may contain ANSI escape sequences; they do not count towards width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := visibleLen(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	sep := strings.Repeat(" ", t.padding)

	t.writeLine(&sb, t.headers, widths, sep)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	t.writeLine(&sb, rule, widths, sep)

	for _, row := range t.rows {
		t.writeLine(&sb, row, widths, sep)
	}

	return sb.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, widths []int, sep string) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = padRight(c, widths[i])
	}
	sb.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
	sb.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// visibleLen counts the runes of s that are not part of an ANSI CSI sequence.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for i, r := range s {
		switch {
		case inEscape:
			if r >= '@' && r <= '~' && s[i-1] != '\033' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}
