package board

import (
	"fmt"

	"lifemap/pkg/geom"
)

// Document is one board: nodes in insertion order, directed edges, and
// the last-seen viewport. The zero value is not usable; construct with
// New or Default.
//
// Every mutating method clones the document and returns the clone. The
// receiver is never modified, so any *Document handed out earlier
// (history snapshots included) stays valid.
type Document struct {
	nodes    map[string]*Node
	order    []string // insertion order, for deterministic iteration
	edges    []Edge
	nextID   int // id counter; never reused within a process lifetime
	Viewport geom.Viewport
}

// New returns an empty document.
func New() *Document {
	return &Document{
		nodes:    make(map[string]*Node),
		Viewport: geom.NewViewport(),
	}
}

// Clone returns a deep copy. Node structs are copied, so mutating a
// node in the clone never shows through in the original.
func (d *Document) Clone() *Document {
	c := &Document{
		nodes:    make(map[string]*Node, len(d.nodes)),
		order:    append([]string(nil), d.order...),
		edges:    append([]Edge(nil), d.edges...),
		nextID:   d.nextID,
		Viewport: d.Viewport,
	}
	for id, n := range d.nodes {
		nn := *n
		c.nodes[id] = &nn
	}
	return c
}

// ── Lookups ──

// Node returns the node with the given id, or nil.
func (d *Document) Node(id string) *Node { return d.nodes[id] }

// Nodes returns all nodes in insertion order.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		if n, ok := d.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns all edges.
func (d *Document) Edges() []Edge { return d.edges }

// Root returns the root node, or nil for a rootless document.
func (d *Document) Root() *Node {
	for _, id := range d.order {
		if n := d.nodes[id]; n != nil && n.Kind == KindRoot {
			return n
		}
	}
	return nil
}

// HasEdge reports whether a source→target edge exists.
func (d *Document) HasEdge(source, target string) bool {
	for _, e := range d.edges {
		if e.Source == source && e.Target == target {
			return true
		}
	}
	return false
}

// HitTest returns the topmost (last-inserted) node containing the
// canvas-space point, or nil.
func (d *Document) HitTest(p geom.Point) *Node {
	for i := len(d.order) - 1; i >= 0; i-- {
		n := d.nodes[d.order[i]]
		if n != nil && n.Bounds().Contains(p) {
			return n
		}
	}
	return nil
}

// NodesInRect returns all nodes whose bounds overlap r, in insertion
// order. Used for box-selection.
func (d *Document) NodesInRect(r geom.Rect) []*Node {
	var out []*Node
	for _, id := range d.order {
		if n := d.nodes[id]; n != nil && n.Bounds().Overlaps(r) {
			out = append(out, n)
		}
	}
	return out
}

// ── Mutations ──

func (d *Document) allocID(prefix string) (*Document, string) {
	c := d.Clone()
	c.nextID++
	return c, fmt.Sprintf("%s%d", prefix, c.nextID)
}

// AddNode inserts a node with a fresh id and returns the new document
// and the assigned id. Zero-valued fields get defaults: kind leaf,
// label "untitled".
func (d *Document) AddNode(n Node) (*Document, string) {
	c, id := d.allocID("n")
	n.ID = id
	if n.Kind == "" {
		n.Kind = KindLeaf
	}
	if n.Label == "" {
		n.Label = "untitled"
	}
	c.nodes[id] = &n
	c.order = append(c.order, id)
	return c, id
}

// DeleteNode removes a node and every edge touching it. Deleting the
// root or an unknown id returns the document unchanged.
func (d *Document) DeleteNode(id string) *Document {
	n, ok := d.nodes[id]
	if !ok || n.Kind == KindRoot {
		return d
	}
	c := d.Clone()
	delete(c.nodes, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	kept := c.edges[:0]
	for _, e := range c.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	c.edges = kept
	return c
}

// MoveNode replaces a node's position. Unknown ids are ignored.
func (d *Document) MoveNode(id string, p geom.Point) *Document {
	if _, ok := d.nodes[id]; !ok {
		return d
	}
	c := d.Clone()
	c.nodes[id].X = p.X
	c.nodes[id].Y = p.Y
	return c
}

// Connect adds a source→target edge. Self-loops, unknown endpoints,
// and duplicate pairs leave the document unchanged.
func (d *Document) Connect(source, target string) *Document {
	if source == target {
		return d
	}
	if _, ok := d.nodes[source]; !ok {
		return d
	}
	if _, ok := d.nodes[target]; !ok {
		return d
	}
	if d.HasEdge(source, target) {
		return d
	}
	c, id := d.allocID("e")
	c.edges = append(c.edges, Edge{ID: id, Source: source, Target: target})
	return c
}

// DisconnectEdge removes the edge with the given id, if present.
func (d *Document) DisconnectEdge(edgeID string) *Document {
	for i, e := range d.edges {
		if e.ID == edgeID {
			c := d.Clone()
			c.edges = append(c.edges[:i], c.edges[i+1:]...)
			return c
		}
	}
	return d
}

// RelabelNode replaces a node's label. Unknown ids are ignored.
func (d *Document) RelabelNode(id, label string) *Document {
	n, ok := d.nodes[id]
	if !ok || n.Label == label {
		return d
	}
	c := d.Clone()
	c.nodes[id].Label = label
	return c
}

// RecolorNode replaces a node's color. Unknown ids are ignored.
func (d *Document) RecolorNode(id, color string) *Document {
	n, ok := d.nodes[id]
	if !ok || n.Color == color {
		return d
	}
	c := d.Clone()
	c.nodes[id].Color = color
	return c
}

// SetIcon replaces a node's icon. Unknown ids are ignored.
func (d *Document) SetIcon(id, icon string) *Document {
	n, ok := d.nodes[id]
	if !ok || n.Icon == icon {
		return d
	}
	c := d.Clone()
	c.nodes[id].Icon = icon
	return c
}

// ── Backlog ──

// Unmapped returns the entities that have no node on the board, in the
// order given. Pure query, no mutation.
func (d *Document) Unmapped(entities []Entity) []Entity {
	placed := make(map[string]bool)
	for _, id := range d.order {
		if n := d.nodes[id]; n != nil && n.SessionID != "" {
			placed[n.SessionID] = true
		}
	}
	var out []Entity
	for _, e := range entities {
		if !placed[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// AddNodeForEntity places a backlog entity as a leaf node linked from
// the root. Placement stacks below the root, offset by how many nodes
// the board already has so repeated placements don't pile up.
func (d *Document) AddNodeForEntity(e Entity) (*Document, string) {
	pos := geom.Pt(4, 4)
	if r := d.Root(); r != nil {
		b := r.Bounds()
		pos = geom.Pt(b.Right+8, b.Top+float64(len(d.order)-1)*4)
	}
	c, id := d.AddNode(Node{
		X:         pos.X,
		Y:         pos.Y,
		Label:     e.Title,
		Kind:      KindLeaf,
		SessionID: e.ID,
	})
	if r := c.Root(); r != nil {
		c = c.Connect(r.ID, id)
	}
	return c, id
}
