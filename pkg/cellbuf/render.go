package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render flattens the buffer into a styled string, resolving StyleKeys
// through the given map. Horizontal runs of cells sharing a StyleKey
// are rendered with one Style.Render call each, which is far cheaper
// than styling cell by cell. Rows are joined with newlines; an empty
// buffer renders to "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	for y := 0; y < b.H; y++ {
		row := b.Cells[y]
		var sb strings.Builder

		start := 0
		for x := 1; x <= b.W; x++ {
			if x < b.W && row[x].Style == row[start].Style {
				continue
			}
			chunk := make([]rune, x-start)
			for i := start; i < x; i++ {
				chunk[i-start] = row[i].Ch
			}
			if style, ok := styles[row[start].Style]; ok {
				sb.WriteString(style.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
