package drawutil

import (
	"image"

	"lifemap/pkg/cellbuf"
)

// charAt picks the line character for point i of a polyline from its
// local direction.
func charAt(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawPolyline draws a connected point sequence with directional line
// characters.
func DrawPolyline(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey) {
	for i, p := range pts {
		buf.Set(p.X, p.Y, charAt(pts, i), style)
	}
}

// DrawArrowPolyline draws a polyline whose final point is an arrowhead
// oriented along the last segment.
func DrawArrowPolyline(buf *cellbuf.Buffer, pts []image.Point, lineStyle, arrowStyle cellbuf.StyleKey) {
	if len(pts) == 0 {
		return
	}
	for i, p := range pts[:len(pts)-1] {
		buf.Set(p.X, p.Y, charAt(pts, i), lineStyle)
	}
	last := pts[len(pts)-1]
	var dx, dy int
	if len(pts) >= 2 {
		dx = last.X - pts[len(pts)-2].X
		dy = last.Y - pts[len(pts)-2].Y
	}
	buf.Set(last.X, last.Y, ArrowChar(dx, dy), arrowStyle)
}

// DrawDashedPolyline draws a polyline with every third point skipped.
// Used for the in-progress link preview.
func DrawDashedPolyline(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey) {
	for i, p := range pts {
		if i%3 != 2 {
			buf.Set(p.X, p.Y, charAt(pts, i), style)
		}
	}
}

// DrawHGuide draws a horizontal alignment guide across the full buffer
// width at row y, only into cells that are still empty.
func DrawHGuide(buf *cellbuf.Buffer, y int, style cellbuf.StyleKey) {
	for x := 0; x < buf.W; x++ {
		if x%2 == 0 {
			buf.SetIfEmpty(x, y, '╌', style)
		}
	}
}

// DrawVGuide draws a vertical alignment guide down the full buffer
// height at column x, only into cells that are still empty.
func DrawVGuide(buf *cellbuf.Buffer, x int, style cellbuf.StyleKey) {
	for y := 0; y < buf.H; y++ {
		if y%2 == 0 {
			buf.SetIfEmpty(x, y, '╎', style)
		}
	}
}

// DrawRectOutline draws the outline of a rectangle. Used for the
// box-select marquee.
func DrawRectOutline(buf *cellbuf.Buffer, r image.Rectangle, style cellbuf.StyleKey) {
	r = r.Canon()
	for x := r.Min.X; x <= r.Max.X; x++ {
		buf.Set(x, r.Min.Y, '·', style)
		buf.Set(x, r.Max.Y, '·', style)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		buf.Set(r.Min.X, y, '·', style)
		buf.Set(r.Max.X, y, '·', style)
	}
}
