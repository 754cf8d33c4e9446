package pipeline

import (
	stderrors "errors"
	"strings"

	"github.com/matzehuels/hasse/pkg/core/dag/transform"
	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/poset"
)

// ComputeHasseDiagram reduces the poset's relation to its covering relation
// and assigns every element a level.
//
// The diagram holds one node per distinct element and one edge per covering
// pair, both in declaration order. Node coordinates are left unset; see
// [ComputeLayout]. An empty poset yields an empty diagram.
//
// Errors:
//   - UNKNOWN_ELEMENT if a relation names an undeclared element
//   - CYCLIC_POSET if the relations form a cycle
func ComputeHasseDiagram(p *poset.Poset) (graph.Diagram, error) {
	d, _, err := computeDiagram(p, false)
	return d, err
}

// computeDiagram is ComputeHasseDiagram with the reduction optionally
// disabled. It also returns the reduction metrics.
func computeDiagram(p *poset.Poset, keepRedundant bool) (graph.Diagram, transform.Result, error) {
	if p == nil {
		p = &poset.Poset{}
	}
	g, err := p.DAG()
	if err != nil {
		return graph.Diagram{}, transform.Result{}, err
	}

	res, err := transform.ReduceWithOptions(g, transform.ReduceOptions{
		SkipTransitiveReduction: keepRedundant,
	})
	if err != nil {
		var cycle *transform.CycleError
		if stderrors.As(err, &cycle) {
			return graph.Diagram{}, transform.Result{}, errors.New(errors.ErrCodeCyclicPoset,
				"relations form a cycle: %s", strings.Join(cycle.Path, " < "))
		}
		return graph.Diagram{}, transform.Result{}, errors.Wrap(errors.ErrCodeInternal, err, "reduce relation")
	}
	return graph.FromDAG(g), res, nil
}
