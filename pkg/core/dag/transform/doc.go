// Package transform provides the graph algorithms that turn a declared
// "below" relation into a Hasse diagram.
//
// # Overview
//
// A poset is usually given by more relations than it needs: "1 < 12" is
// implied by "1 < 2", "2 < 4" and "4 < 12". A Hasse diagram draws only the
// covering relations, the pairs with nothing in between, and places every
// element on a level above everything it covers.
//
// # Transitive Closure
//
// [TransitiveClosure] computes every implied pair with Warshall's algorithm.
// The resulting [Closure] is queried, never mutated, by the later steps.
//
// # Transitive Reduction
//
// [TransitiveReduction] removes each declared edge (a, b) for which some
// third element lies strictly between a and b in the closure. Only declared
// edges are considered, so the result is always a subset of the input.
//
// # Level Assignment
//
// [AssignLevels] gives minimal elements level 0 and every other element one
// more than the highest level directly below it.
//
// # Cycles
//
// A strict partial order has no cycles. [FindCycle] locates one if present,
// and [Reduce] refuses cyclic input with a [*CycleError].
//
// # Full Pipeline
//
// [Reduce] runs all steps in order and reports a [Result]:
//
//	g := dag.New()
//	// ... add elements and relations ...
//	res, err := transform.Reduce(g)
//	if err != nil {
//	    // cyclic relation
//	}
//	fmt.Println(res.RedundantEdgesRemoved)
//
// Use [ReduceWithOptions] to skip individual steps.
//
// [Hasse diagram]: https://en.wikipedia.org/wiki/Hasse_diagram
package transform
