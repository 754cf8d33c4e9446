package transform

// Result contains metrics about the reduction applied to a graph.
//
// Result is returned by [Reduce] and [ReduceWithOptions] to provide
// visibility into what happened. This is useful for logging, API responses
// and the CLI summary.
type Result struct {
	// Closure is the transitive closure the reduction was computed against.
	// It is nil when the reduction step was skipped.
	Closure *Closure

	// ClosurePairs is the number of pairs in the transitive closure.
	ClosurePairs int

	// RedundantEdgesRemoved is the number of declared relations that were
	// implied by others and dropped.
	RedundantEdgesRemoved int

	// MaxLevel is the highest level after level assignment.
	MaxLevel int
}

// ReduceOptions configures which steps are applied by [ReduceWithOptions].
//
// The zero value applies all steps (equivalent to calling [Reduce]).
type ReduceOptions struct {
	// SkipCycleCheck disables the up-front cycle search. Level assignment
	// still refuses cyclic graphs, but the error carries no cycle path.
	SkipCycleCheck bool

	// SkipTransitiveReduction keeps every declared relation. Levels are then
	// computed over the declared relation instead of the covering relation.
	SkipTransitiveReduction bool
}
