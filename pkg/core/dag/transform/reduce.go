package transform

import "github.com/matzehuels/hasse/pkg/core/dag"

// Reduce turns a declared "below" relation into a Hasse diagram in place.
//
// Reduce applies, in order:
//  1. [FindCycle] - cyclic relations are rejected with a [*CycleError]
//  2. [TransitiveClosure]
//  3. [TransitiveReduction] against that closure
//  4. [AssignLevels]
//
// On error g is left with its declared edges and no level changes.
func Reduce(g *dag.DAG) (Result, error) {
	return ReduceWithOptions(g, ReduceOptions{})
}

// ReduceWithOptions is [Reduce] with individual steps switched off.
func ReduceWithOptions(g *dag.DAG, opts ReduceOptions) (Result, error) {
	if !opts.SkipCycleCheck {
		if cycle := FindCycle(g); cycle != nil {
			return Result{}, &CycleError{Path: cycle}
		}
	}

	var result Result
	if !opts.SkipTransitiveReduction {
		result.Closure = TransitiveClosure(g)
		result.ClosurePairs = result.Closure.Len()
		result.RedundantEdgesRemoved = TransitiveReduction(g, result.Closure)
	}

	if err := AssignLevels(g); err != nil {
		return Result{}, err
	}
	result.MaxLevel = g.MaxLevel()
	return result, nil
}
