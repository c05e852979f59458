// Package cellbuf provides a 2D grid of styled characters for drawing
// the board canvas (grid dots, edge curves, guide lines) before
// compositing it as a single Lipgloss layer.
//
// Cells carry a StyleKey rather than a concrete style; the mapping to
// lipgloss.Style is supplied at render time, keeping the buffer free
// of any color scheme. All runes are treated as single-width;
// double-width characters are not supported.
package cellbuf

// StyleKey names a visual style. The renderer resolves keys to
// lipgloss styles.
type StyleKey int

// Cell is one styled character.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a fixed-size grid of cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New returns a w×h buffer filled with spaces in the default style.
// Negative dimensions clamp to zero.
func New(w, h int, def StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: def}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes one character. Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetIfEmpty writes one character only if the cell still holds a
// space. Guide lines use this so they thread between edge glyphs
// instead of punching through them.
func (b *Buffer) SetIfEmpty(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) && b.Cells[y][x].Ch == ' ' {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string left to right starting at (x, y). Runes
// landing outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for i, ch := range []rune(s) {
		b.Set(x+i, y, ch, style)
	}
}

// At returns the cell at (x, y); the zero Cell when out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[y][x]
}
