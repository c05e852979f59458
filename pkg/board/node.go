// Package board holds the life-board document: positioned nodes,
// directed edges between them, the saved viewport, and the mutation
// API the editor drives. Mutations clone the document and return the
// copy, so a history stack can hold references to past states without
// deep-copy bookkeeping of its own.
package board

import "lifemap/pkg/geom"

// Kind classifies a node. The root is the single undeletable anchor of
// the board; categories group leaves; leaves are sessions or free-form
// concepts.
type Kind string

const (
	KindRoot     Kind = "root"
	KindCategory Kind = "category"
	KindLeaf     Kind = "leaf"
)

// kindSizes is the fallback size table, in canvas units (cells at
// zoom 1). Hit-testing, snapping, and rendering all read node sizes
// through Node.Size so the three always agree.
var kindSizes = map[Kind]geom.Point{
	KindRoot:     {X: 24, Y: 3},
	KindCategory: {X: 22, Y: 3},
	KindLeaf:     {X: 18, Y: 3},
}

// Node is a single box on the board. Position is the top-left corner
// in canvas space. SessionID is set when the node represents a focus
// session from the session store, empty for free-form concepts.
type Node struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label"`
	Kind      Kind    `json:"kind"`
	Color     string  `json:"color,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	SessionID string  `json:"sessionId,omitempty"`
}

// Pos implements geom.Sized.
func (n *Node) Pos() geom.Point { return geom.Pt(n.X, n.Y) }

// Size implements geom.Sized, using the per-kind fallback table.
func (n *Node) Size() geom.Point {
	if sz, ok := kindSizes[n.Kind]; ok {
		return sz
	}
	return kindSizes[KindLeaf]
}

// Bounds returns the node's bounding rectangle in canvas space.
func (n *Node) Bounds() geom.Rect { return geom.BoundsOf(n) }

// Edge is a directed link between two nodes.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Entity is an external record (a focus session) that may or may not
// be represented on the board. The session store converts its own rows
// into Entities; the board only ever sees this shape.
type Entity struct {
	ID    string
	Title string
}
