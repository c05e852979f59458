package drawutil

import "lifemap/pkg/cellbuf"

// DrawGrid scatters dots over the buffer at regular world intervals,
// shifted by the pan offset so the grid appears anchored to the canvas
// rather than the screen.
func DrawGrid(buf *cellbuf.Buffer, panX, panY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		wy := r - panY
		if mod(wy, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c-panX, spacingX) == 0 {
				buf.SetIfEmpty(c, r, '·', style)
			}
		}
	}
}

// mod is a non-negative modulus; Go's % is negative for negative
// operands.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
