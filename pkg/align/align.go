// Package align computes snap candidates for a node being dragged:
// the nearest shared vertical line (X axis) and horizontal line (Y
// axis) among the other nodes' edges and centers, within a threshold.
// All functions are pure; repeated calls with the same inputs return
// the same result.
package align

import (
	"math"

	"lifemap/pkg/geom"
)

// DefaultThreshold is the snap distance in canvas units.
const DefaultThreshold = 8.0

// Mode identifies which alignment matched on an axis.
type Mode int

const (
	Center Mode = iota // center-to-center
	Low                // left-to-left or top-to-top
	High               // right-to-right or bottom-to-bottom
)

// Target is a candidate node to align against.
type Target struct {
	ID     string
	Bounds geom.Rect
}

// AxisSnap describes one matched alignment on a single axis.
type AxisSnap struct {
	Mode  Mode
	RefID string  // node matched against
	Line  float64 // guide-line coordinate: x for the X axis, y for the Y axis
}

// Result is the outcome of a snap query. X and Y are independent: both,
// either, or neither may be set, possibly against different reference
// nodes. Pos is the position to use instead of the raw drag position —
// equal to the raw position when nothing snapped.
type Result struct {
	X   *AxisSnap
	Y   *AxisSnap
	Pos geom.Point
}

// Snap evaluates the dragged node (by its tentative top-left position
// and size) against the targets. The dragged node itself must not be
// in targets. Per axis, the candidate with the smallest distance at or
// under threshold wins; on a tie the earliest target in slice order
// wins, so results are deterministic for a stable node ordering.
func Snap(tentative, size geom.Point, targets []Target, threshold float64) Result {
	res := Result{Pos: tentative}
	moving := geom.RectAt(tentative, size)

	bestX, bestY := threshold, threshold
	for _, tgt := range targets {
		b := tgt.Bounds

		// X axis: center, left, right.
		for _, cand := range [3]struct {
			mode Mode
			dist float64
			line float64
			newX float64
		}{
			{Center, math.Abs(b.CenterX() - moving.CenterX()), b.CenterX(), b.CenterX() - size.X/2},
			{Low, math.Abs(b.Left - moving.Left), b.Left, b.Left},
			{High, math.Abs(b.Right - moving.Right), b.Right, b.Right - size.X},
		} {
			if cand.dist < bestX || (res.X == nil && cand.dist <= bestX) {
				bestX = cand.dist
				res.X = &AxisSnap{Mode: cand.mode, RefID: tgt.ID, Line: cand.line}
				res.Pos.X = cand.newX
			}
		}

		// Y axis: center, top, bottom.
		for _, cand := range [3]struct {
			mode Mode
			dist float64
			line float64
			newY float64
		}{
			{Center, math.Abs(b.CenterY() - moving.CenterY()), b.CenterY(), b.CenterY() - size.Y/2},
			{Low, math.Abs(b.Top - moving.Top), b.Top, b.Top},
			{High, math.Abs(b.Bottom - moving.Bottom), b.Bottom, b.Bottom - size.Y},
		} {
			if cand.dist < bestY || (res.Y == nil && cand.dist <= bestY) {
				bestY = cand.dist
				res.Y = &AxisSnap{Mode: cand.mode, RefID: tgt.ID, Line: cand.line}
				res.Pos.Y = cand.newY
			}
		}
	}
	return res
}
