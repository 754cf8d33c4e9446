package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/hasse/pkg/core/dag"
	"github.com/matzehuels/hasse/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout strategies.
const (
	LayoutHierarchical = errors.LayoutHierarchical
	LayoutCircular     = errors.LayoutCircular
)

// Layouts lists every supported layout strategy.
var Layouts = []string{LayoutHierarchical, LayoutCircular}

// =============================================================================
// Diagram - Hasse Diagram Serialization
// =============================================================================

// Diagram is the canonical serialization format for Hasse diagrams.
// Used for API responses, caching, files and renderer input.
//
// Nodes appear in element declaration order and edges in relation
// declaration order. Layout and LevelHeight describe how the coordinates
// were produced and are empty until a layout has been applied.
type Diagram struct {
	ID          string  `json:"id,omitempty"`
	Nodes       []Node  `json:"nodes"`
	Edges       []Edge  `json:"edges"`
	Layout      string  `json:"layout,omitempty"`
	LevelHeight float64 `json:"level_height,omitempty"`
}

// =============================================================================
// Node - Diagram Element
// =============================================================================

// Node is a single poset element placed in the diagram.
type Node struct {
	ID    string   `json:"id"`
	Level int      `json:"level"`
	X     *float64 `json:"x,omitempty"` // nil until a layout is applied
	Y     *float64 `json:"y,omitempty"`
}

// HasPosition reports whether both coordinates are set.
func (n Node) HasPosition() bool { return n.X != nil && n.Y != nil }

// Position returns the coordinates, or (0, 0) if unset.
func (n Node) Position() (x, y float64) {
	if n.X != nil {
		x = *n.X
	}
	if n.Y != nil {
		y = *n.Y
	}
	return x, y
}

// =============================================================================
// Edge - Covering Relation
// =============================================================================

// Edge connects a lower element (Source) to an element that covers it (Target).
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// =============================================================================
// Diagram Helpers
// =============================================================================

// Clone returns a deep copy of the diagram. Coordinates are copied, not
// shared, so writing to the clone never affects d.
func (d Diagram) Clone() Diagram {
	out := d
	out.Nodes = make([]Node, len(d.Nodes))
	for i, n := range d.Nodes {
		out.Nodes[i] = Node{ID: n.ID, Level: n.Level}
		if n.X != nil {
			out.Nodes[i].X = ptr(*n.X)
		}
		if n.Y != nil {
			out.Nodes[i].Y = ptr(*n.Y)
		}
	}
	out.Edges = slices.Clone(d.Edges)
	return out
}

// MaxLevel returns the highest node level, or -1 for an empty diagram.
func (d Diagram) MaxLevel() int {
	maxLevel := -1
	for _, n := range d.Nodes {
		maxLevel = max(maxLevel, n.Level)
	}
	return maxLevel
}

// Levels groups node IDs by level. Within a level nodes keep diagram order.
// The result has MaxLevel()+1 entries; levels without nodes are empty.
func (d Diagram) Levels() [][]string {
	levels := make([][]string, d.MaxLevel()+1)
	for _, n := range d.Nodes {
		if n.Level >= 0 {
			levels[n.Level] = append(levels[n.Level], n.ID)
		}
	}
	return levels
}

// NodeIndex maps node IDs to their index in d.Nodes.
func (d Diagram) NodeIndex() map[string]int {
	idx := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		idx[n.ID] = i
	}
	return idx
}

// HasCoordinates reports whether every node has been placed.
// An empty diagram has no coordinates.
func (d Diagram) HasCoordinates() bool {
	if len(d.Nodes) == 0 {
		return false
	}
	for _, n := range d.Nodes {
		if !n.HasPosition() {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of all placed nodes. ok is false when no
// node has coordinates.
func (d Diagram) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, n := range d.Nodes {
		if !n.HasPosition() {
			continue
		}
		x, y := n.Position()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
		ok = true
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}

// Validate checks structural consistency: node IDs are non-empty and
// unique, levels are non-negative, and every edge references known nodes.
func (d Diagram) Validate() error {
	seen := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "node %d has an empty id", i)
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node id %q", n.ID)
		}
		if n.Level < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "node %q has negative level %d", n.ID, n.Level)
		}
		seen[n.ID] = true
	}
	for _, e := range d.Edges {
		if !seen[e.Source] {
			return errors.New(errors.ErrCodeUnknownElement, "edge source %q is not a node", e.Source)
		}
		if !seen[e.Target] {
			return errors.New(errors.ErrCodeUnknownElement, "edge target %q is not a node", e.Target)
		}
	}
	return nil
}

// =============================================================================
// DAG ↔ Diagram Conversion
// =============================================================================

// FromDAG converts a leveled DAG to its serialization format.
// Node and edge order follow the DAG's insertion order.
func FromDAG(g *dag.DAG) Diagram {
	nodes := g.Nodes()
	edges := g.Edges()

	out := Diagram{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = Node{ID: n.ID, Level: n.Level}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{Source: e.From, Target: e.To}
	}
	return out
}

// ToDAG converts a Diagram back to a DAG, keeping levels.
// Returns an error if the diagram is structurally invalid or if an edge
// does not climb from a lower level to a higher one.
func ToDAG(d Diagram) (*dag.DAG, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := dag.New()
	for _, n := range d.Nodes {
		if err := g.AddNode(dag.Node{ID: n.ID, Level: n.Level}); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(dag.Edge{From: e.Source, To: e.Target}); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", e.Source, e.Target, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "inconsistent diagram")
	}
	return g, nil
}

func ptr(v float64) *float64 { return &v }
