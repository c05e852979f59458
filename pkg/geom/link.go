package geom

import "math"

// MinControlOffset is the smallest horizontal control-point offset for
// a link curve, so near-vertical links still bow out horizontally.
const MinControlOffset = 6.0

// LinkPath is a cubic bezier from P1 to P2 with control points C1, C2.
type LinkPath struct {
	P1, C1, C2, P2 Point
}

// Link returns the curve connecting p1 to p2. The control points sit at
// a horizontal offset of max(|Δx|*0.5, MinControlOffset) from the
// endpoints, giving links a horizontal S shape regardless of vertical
// separation. Identical inputs always produce an identical path.
func Link(p1, p2 Point) LinkPath {
	off := math.Abs(p2.X-p1.X) * 0.5
	if off < MinControlOffset {
		off = MinControlOffset
	}
	return LinkPath{
		P1: p1,
		C1: Point{p1.X + off, p1.Y},
		C2: Point{p2.X - off, p2.Y},
		P2: p2,
	}
}

// At evaluates the curve at t in [0, 1].
func (l LinkPath) At(t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*l.P1.X + b*l.C1.X + c*l.C2.X + d*l.P2.X,
		Y: a*l.P1.Y + b*l.C1.Y + c*l.C2.Y + d*l.P2.Y,
	}
}
