package layout

import (
	"math"

	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
)

// Layout geometry.
const (
	// Pitch is the horizontal distance between neighbours on one level.
	Pitch = 100.0

	// DefaultLevelHeight is the vertical distance between levels when the
	// caller does not choose one.
	DefaultLevelHeight = 100.0

	// MinRadius is the smallest circle radius used by [Circular].
	MinRadius = 150.0

	// RadiusPerNode is the circle radius contributed by each node.
	RadiusPerNode = 20.0
)

// Options selects and parameterizes a layout strategy.
//
// The zero value is a hierarchical layout with the default level height.
type Options struct {
	// Type is graph.LayoutHierarchical or graph.LayoutCircular.
	// Empty means hierarchical.
	Type string

	// LevelHeight is the vertical distance between levels in the
	// hierarchical layout. Zero means DefaultLevelHeight, so y = level*100
	// rather than a flat row; negative or non-finite heights are rejected.
	// The circular layout ignores it.
	LevelHeight float64
}

// Normalize fills in defaults and validates the result. It returns an
// INVALID_LAYOUT error for unknown layout types and for level heights that
// are negative or not finite.
func (o Options) Normalize() (Options, error) {
	if o.Type == "" {
		o.Type = graph.LayoutHierarchical
	}
	if o.LevelHeight == 0 {
		o.LevelHeight = DefaultLevelHeight
	}
	if err := errors.ValidateLayoutType(o.Type); err != nil {
		return o, err
	}
	if err := errors.ValidateLevelHeight(o.LevelHeight); err != nil {
		return o, err
	}
	return o, nil
}

// Apply computes coordinates for every node of d using the strategy named
// in opts, and records the strategy on the diagram.
//
// An empty diagram is left without coordinates and is not an error.
// On error d is not modified.
func Apply(d *graph.Diagram, opts Options) error {
	opts, err := opts.Normalize()
	if err != nil {
		return err
	}

	switch opts.Type {
	case graph.LayoutCircular:
		Circular(d)
	default:
		Hierarchical(d, opts.LevelHeight)
	}

	d.Layout = opts.Type
	d.LevelHeight = opts.LevelHeight
	return nil
}

// Hierarchical places the n nodes of each level at
// x = -50·n + 50 + 100·i (i being the node's index within its level) and
// y = level·levelHeight.
func Hierarchical(d *graph.Diagram, levelHeight float64) {
	byLevel := make(map[int][]int)
	for i, n := range d.Nodes {
		byLevel[n.Level] = append(byLevel[n.Level], i)
	}

	for level, members := range byLevel {
		width := float64(len(members)-1) * Pitch
		y := float64(level) * levelHeight
		for i, idx := range members {
			x := -width/2 + float64(i)*Pitch
			d.Nodes[idx].X = ptr(x)
			d.Nodes[idx].Y = ptr(y)
		}
	}
}

// Circular places the n nodes on a circle of radius max(20·n, 150) at
// angles i·2π/n, in diagram order.
func Circular(d *graph.Diagram) {
	n := len(d.Nodes)
	if n == 0 {
		return
	}
	r := Radius(n)
	step := 2 * math.Pi / float64(n)
	for i := range d.Nodes {
		angle := float64(i) * step
		d.Nodes[i].X = ptr(r * math.Cos(angle))
		d.Nodes[i].Y = ptr(r * math.Sin(angle))
	}
}

// Radius returns the circle radius used by [Circular] for n nodes.
func Radius(n int) float64 {
	return max(RadiusPerNode*float64(n), MinRadius)
}

func ptr(v float64) *float64 { return &v }
