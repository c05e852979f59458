package geom

import (
	"math"
	"testing"
)

type testBox struct {
	X, Y float64
	W, H float64
}

func (b testBox) Pos() Point  { return Pt(b.X, b.Y) }
func (b testBox) Size() Point { return Pt(b.W, b.H) }

// ── Transforms ──

func TestScreenToCanvasIdentity(t *testing.T) {
	vp := NewViewport()
	p := ScreenToCanvas(Pt(12, 7), vp)
	if p != Pt(12, 7) {
		t.Errorf("identity viewport: expected (12,7), got %v", p)
	}
}

func TestScreenToCanvasPanZoom(t *testing.T) {
	vp := Viewport{Pan: Pt(10, 20), Zoom: 2}
	p := ScreenToCanvas(Pt(30, 40), vp)
	if p != Pt(10, 10) {
		t.Errorf("expected (10,10), got %v", p)
	}
}

func TestCanvasToScreenRoundTrip(t *testing.T) {
	vp := Viewport{Pan: Pt(-5, 3.5), Zoom: 0.5}
	orig := Pt(42, -17)
	back := ScreenToCanvas(CanvasToScreen(orig, vp), vp)
	if math.Abs(back.X-orig.X) > 1e-9 || math.Abs(back.Y-orig.Y) > 1e-9 {
		t.Errorf("round trip drift: %v -> %v", orig, back)
	}
}

// ── Bounds ──

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(testBox{X: 10, Y: 20, W: 8, H: 4})
	want := Rect{Left: 10, Top: 20, Right: 18, Bottom: 24}
	if b != want {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestCenterOf(t *testing.T) {
	c := CenterOf(testBox{X: 10, Y: 20, W: 8, H: 4})
	if c != Pt(14, 22) {
		t.Errorf("expected (14,22), got %v", c)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	if !r.Contains(Pt(0, 0)) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("right edge should be exclusive")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := Rect{Left: 9, Top: 9, Right: 20, Bottom: 20}
	c := Rect{Left: 10, Top: 0, Right: 20, Bottom: 10}
	if !a.Overlaps(b) {
		t.Error("a and b overlap")
	}
	if a.Overlaps(c) {
		t.Error("touching rects do not overlap")
	}
}

func TestHandleBoundsOnRightEdge(t *testing.T) {
	box := testBox{X: 0, Y: 0, W: 20, H: 4}
	h := HandleBounds(box)
	if !h.Contains(Pt(19.5, 2)) {
		t.Errorf("right-border midpoint should be in handle, got %v", h)
	}
	if h.Contains(Pt(10, 2)) {
		t.Error("node center must not be in handle")
	}
}

// ── Link paths ──

func TestLinkDeterministic(t *testing.T) {
	a := Link(Pt(0, 0), Pt(100, 50))
	b := Link(Pt(0, 0), Pt(100, 50))
	if a != b {
		t.Errorf("identical inputs produced different paths: %v vs %v", a, b)
	}
}

func TestLinkControlOffset(t *testing.T) {
	l := Link(Pt(0, 0), Pt(100, 0))
	if l.C1 != Pt(50, 0) || l.C2 != Pt(50, 0) {
		t.Errorf("expected control offset 50, got C1=%v C2=%v", l.C1, l.C2)
	}
}

func TestLinkMinControlOffset(t *testing.T) {
	// Vertical link: |Δx| = 0, so the minimum offset applies.
	l := Link(Pt(10, 0), Pt(10, 40))
	if l.C1.X != 10+MinControlOffset {
		t.Errorf("expected C1.X=%v, got %v", 10+MinControlOffset, l.C1.X)
	}
	if l.C2.X != 10-MinControlOffset {
		t.Errorf("expected C2.X=%v, got %v", 10-MinControlOffset, l.C2.X)
	}
}

func TestLinkEndpoints(t *testing.T) {
	l := Link(Pt(3, 4), Pt(90, -12))
	if l.At(0) != Pt(3, 4) {
		t.Errorf("At(0): expected (3,4), got %v", l.At(0))
	}
	end := l.At(1)
	if math.Abs(end.X-90) > 1e-9 || math.Abs(end.Y+12) > 1e-9 {
		t.Errorf("At(1): expected (90,-12), got %v", end)
	}
}
