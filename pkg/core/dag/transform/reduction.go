package transform

import "github.com/matzehuels/hasse/pkg/core/dag"

// TransitiveReduction keeps only the covering edges of g and returns the
// number of edges it removed.
//
// An edge (a, b) is redundant, and removed, when some third element c with
// c != a and c != b satisfies (a, c) and (c, b) in the closure. Only edges
// actually present in g are examined; pairs that appear in the closure but
// were never declared are not added back. If closure is nil it is computed
// from g first.
//
// All edges are classified against the same closure before any edge is
// removed, so the result does not depend on edge order.
//
// # Idempotence
//
// Running TransitiveReduction on its own output removes nothing: the
// covering edges of an acyclic relation generate the same closure, and a
// covering edge has no intermediate element by definition.
//
// # Performance
//
// Time complexity is O(E·V) on top of the closure computation.
func TransitiveReduction(g *dag.DAG, closure *Closure) int {
	if g.EdgeCount() == 0 {
		return 0
	}
	if closure == nil {
		closure = TransitiveClosure(g)
	}

	var redundant []Pair
	for _, e := range g.Edges() {
		src, okS := closure.index[e.From]
		dst, okD := closure.index[e.To]
		if !okS || !okD {
			continue
		}
		if closure.hasIntermediate(src, dst) {
			redundant = append(redundant, Pair{Lower: e.From, Upper: e.To})
		}
	}

	before := g.EdgeCount()
	for _, p := range redundant {
		g.RemoveEdge(p.Lower, p.Upper)
	}
	return before - g.EdgeCount()
}

// CoveringPairs returns the edges of g that survive transitive reduction
// without modifying g.
func CoveringPairs(g *dag.DAG, closure *Closure) []Pair {
	work := g.Clone()
	TransitiveReduction(work, closure)
	edges := work.Edges()
	pairs := make([]Pair, len(edges))
	for i, e := range edges {
		pairs[i] = Pair{Lower: e.From, Upper: e.To}
	}
	return pairs
}
