package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table renders aligned columns. Columns listed in RightAlign are padded on the left.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign []int
	Gap        int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return "No data"
	}
	cols := len(t.Headers)
	for _, r := range t.Rows {
		cols = max(cols, len(r))
	}
	widths := make([]int, cols)
	all := t.Rows
	if len(t.Headers) > 0 {
		all = append([][]string{t.Headers}, t.Rows...)
	}
	for _, r := range all {
		for i, cell := range r {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	gap := t.Gap
	if gap <= 0 {
		gap = 2
	}
	right := make(map[int]bool, len(t.RightAlign))
	for _, c := range t.RightAlign {
		right[c] = true
	}

	lines := make([]string, 0, len(all))
	for _, r := range all {
		cells := make([]string, cols)
		for i := range cols {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			pad := strings.Repeat(" ", widths[i]-ansi.StringWidth(cell))
			if right[i] {
				cells[i] = pad + cell
			} else {
				cells[i] = cell + pad
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, strings.Repeat(" ", gap)), " "))
		if len(lines) >= height {
			break
		}
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}
