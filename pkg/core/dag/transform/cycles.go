package transform

import (
	"strings"

	"github.com/matzehuels/hasse/pkg/core/dag"
)

// CycleError reports a directed cycle in a relation that was expected to be
// a strict partial order. It unwraps to [dag.ErrGraphHasCycle].
type CycleError struct {
	// Path lists the elements of the cycle; the first element is repeated at
	// the end, e.g. [a b c a].
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "relation contains a cycle: " + strings.Join(e.Path, " < ")
}

// Unwrap returns dag.ErrGraphHasCycle for errors.Is compatibility.
func (e *CycleError) Unwrap() error { return dag.ErrGraphHasCycle }

// FindCycle returns the first directed cycle found in g, or nil if g is
// acyclic.
//
// FindCycle uses depth-first search with white/gray/black coloring, starting
// from the minimal elements and then from any node not yet visited (a cycle
// with no entry from a minimal element is still found). When a gray node is
// reached, the path from that node to the current one is the cycle.
//
// # Performance
//
// Time complexity is O(V + E). Space complexity is O(V) for the color map
// and the recursion stack.
func FindCycle(g *dag.DAG) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.NodeCount())
	var stack []string
	var cycle []string

	var dfs func(node string) bool
	dfs = func(node string) bool {
		color[node] = gray
		stack = append(stack, node)
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				start := len(stack) - 1
				for stack[start] != child {
					start--
				}
				cycle = append(append([]string{}, stack[start:]...), child)
				return true
			}
		}
		stack = stack[:len(stack)-1]
		color[node] = black
		return false
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white && dfs(n.ID) {
			return cycle
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white && dfs(n.ID) {
			return cycle
		}
	}
	return nil
}
