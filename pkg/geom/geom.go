// Package geom provides the coordinate math for the board: screen↔canvas
// transforms under pan/zoom, bounds and center queries over positioned
// elements, and cubic link paths between nodes.
//
// Canvas space is the unbounded float64 coordinate system node positions
// are stored in. Screen space is terminal cells relative to the canvas
// region's top-left. All conversion between the two goes through
// ScreenToCanvas/CanvasToScreen — nothing else in the tree does this
// arithmetic.
package geom

// Point is a position or size in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Viewport maps canvas space to screen space: a pan offset plus a zoom
// factor. Zoom must be > 0.
type Viewport struct {
	Pan  Point   `json:"pan"`
	Zoom float64 `json:"zoom"`
}

// NewViewport returns the identity viewport (no pan, zoom 1).
func NewViewport() Viewport { return Viewport{Zoom: 1} }

// ScreenToCanvas converts a screen point to canvas space:
// canvas = (screen - pan) / zoom.
func ScreenToCanvas(screen Point, vp Viewport) Point {
	return Point{
		X: (screen.X - vp.Pan.X) / vp.Zoom,
		Y: (screen.Y - vp.Pan.Y) / vp.Zoom,
	}
}

// CanvasToScreen is the inverse of ScreenToCanvas.
func CanvasToScreen(canvas Point, vp Viewport) Point {
	return Point{
		X: canvas.X*vp.Zoom + vp.Pan.X,
		Y: canvas.Y*vp.Zoom + vp.Pan.Y,
	}
}

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAt returns the rectangle with top-left at p and the given size.
func RectAt(p, size Point) Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X + size.X, Bottom: p.Y + size.Y}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{r.CenterX(), r.CenterY()} }

// Contains reports whether p lies inside r. The right and bottom
// boundaries are exclusive, matching image.Rectangle semantics.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Overlaps reports whether r and q share any area.
func (r Rect) Overlaps(q Rect) bool {
	return r.Left < q.Right && q.Left < r.Right &&
		r.Top < q.Bottom && q.Top < r.Bottom
}

// Sized is the minimal interface for a positioned, sized element.
// Size is in canvas units (one unit = one terminal cell at zoom 1).
type Sized interface {
	Pos() Point
	Size() Point
}

// BoundsOf returns the bounding rectangle of a Sized element.
func BoundsOf(s Sized) Rect {
	return RectAt(s.Pos(), s.Size())
}

// CenterOf returns the center point of a Sized element.
func CenterOf(s Sized) Point {
	return BoundsOf(s).Center()
}

// HandleBounds returns the link-handle hit region of an element: a
// small rectangle straddling the middle of the right border. Pressing
// inside it starts a link draw instead of a node drag.
func HandleBounds(s Sized) Rect {
	b := BoundsOf(s)
	cy := b.CenterY()
	return Rect{Left: b.Right - 1, Top: cy - 1, Right: b.Right + 1, Bottom: cy + 1}
}
