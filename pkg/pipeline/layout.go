package pipeline

import (
	"github.com/matzehuels/hasse/pkg/core/layout"
	"github.com/matzehuels/hasse/pkg/graph"
)

// ComputeLayout returns a copy of d with coordinates for every node.
//
// layoutType is "hierarchical" (the default when empty) or "circular".
// levelHeight is the vertical distance between levels in the hierarchical
// layout; zero selects the default of 100. The input diagram is not
// modified. Structurally invalid diagrams, including nodes with negative
// levels, yield INVALID_INPUT or UNKNOWN_ELEMENT.
func ComputeLayout(d graph.Diagram, layoutType string, levelHeight float64) (graph.Diagram, error) {
	if err := d.Validate(); err != nil {
		return graph.Diagram{}, err
	}
	out := d.Clone()
	if err := layout.Apply(&out, layout.Options{Type: layoutType, LevelHeight: levelHeight}); err != nil {
		return graph.Diagram{}, err
	}
	return out, nil
}
