package drawutil

import (
	"image"
	"math"

	"lifemap/pkg/geom"
)

// CubicPoints flattens a link curve into a connected polyline of
// integer cells. The curve is sampled at a step count proportional to
// its endpoint span, then consecutive samples are joined with
// Bresenham segments so the polyline has no gaps. Duplicate points
// from adjacent segments are dropped. Output is deterministic for a
// given path.
func CubicPoints(l geom.LinkPath) []image.Point {
	span := math.Abs(l.P2.X-l.P1.X) + math.Abs(l.P2.Y-l.P1.Y)
	steps := int(span)
	if steps < 8 {
		steps = 8
	}

	var pts []image.Point
	prev := image.Pt(int(math.Round(l.P1.X)), int(math.Round(l.P1.Y)))
	pts = append(pts, prev)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := l.At(t)
		cell := image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
		if cell == prev {
			continue
		}
		seg := Bresenham(prev.X, prev.Y, cell.X, cell.Y)
		pts = append(pts, seg[1:]...)
		prev = cell
	}
	return pts
}
