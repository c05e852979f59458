package board

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"lifemap/pkg/geom"
)

// wireDoc is the persisted shape of a document. Node/edge order in the
// arrays is the board's insertion order, which import preserves.
type wireDoc struct {
	Version  int           `json:"version"`
	Viewport geom.Viewport `json:"viewport"`
	Nodes    []Node        `json:"nodes"`
	Edges    []Edge        `json:"edges"`
}

const wireVersion = 1

// Export serializes the document to JSON.
func (d *Document) Export() ([]byte, error) {
	w := wireDoc{
		Version:  wireVersion,
		Viewport: d.Viewport,
		Nodes:    make([]Node, 0, len(d.order)),
		Edges:    append([]Edge{}, d.edges...),
	}
	for _, n := range d.Nodes() {
		w.Nodes = append(w.Nodes, *n)
	}
	return json.MarshalIndent(w, "", "  ")
}

// Import parses a document previously written by Export. The id
// counter is bumped past the highest numeric suffix seen, so ids
// assigned after an import never collide with imported ones.
func Import(data []byte) (*Document, error) {
	var w wireDoc
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse board document: %w", err)
	}
	if w.Version > wireVersion {
		return nil, fmt.Errorf("board document version %d is newer than supported %d", w.Version, wireVersion)
	}

	d := New()
	d.Viewport = w.Viewport
	if d.Viewport.Zoom <= 0 {
		d.Viewport.Zoom = 1
	}
	for i := range w.Nodes {
		n := w.Nodes[i]
		if n.ID == "" || d.nodes[n.ID] != nil {
			continue
		}
		if n.Kind == "" {
			n.Kind = KindLeaf
		}
		d.nodes[n.ID] = &n
		d.order = append(d.order, n.ID)
		d.bumpCounter(n.ID)
	}
	for _, e := range w.Edges {
		if d.nodes[e.Source] == nil || d.nodes[e.Target] == nil {
			continue // prune dangling references from hand-edited files
		}
		if e.Source == e.Target || d.HasEdge(e.Source, e.Target) {
			continue
		}
		if e.ID == "" {
			d.nextID++
			e.ID = fmt.Sprintf("e%d", d.nextID)
		}
		d.edges = append(d.edges, e)
		d.bumpCounter(e.ID)
	}
	return d, nil
}

func (d *Document) bumpCounter(id string) {
	trimmed := strings.TrimLeft(id, "ne")
	if v, err := strconv.Atoi(trimmed); err == nil && v > d.nextID {
		d.nextID = v
	}
}
