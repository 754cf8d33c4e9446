package transform

import (
	"fmt"

	"github.com/matzehuels/hasse/pkg/core/dag"
)

// AssignLevels assigns every node its level: 0 when nothing is directly
// below it, otherwise one more than the highest level among the nodes
// directly below it.
//
// Levels are computed by memoized depth-first descent towards the minimal
// elements. Each node's level is cached the first time it is computed and
// reused on every later visit, so the whole pass is O(V + E).
//
// Existing level assignments in the DAG are overwritten.
//
// # Cycles
//
// The descent keeps track of the nodes on the current path. Reaching one of
// them again means the graph has a cycle; AssignLevels then returns an error
// wrapping [dag.ErrGraphHasCycle] and leaves the levels untouched. Run
// [FindCycle] first to obtain the offending path.
func AssignLevels(g *dag.DAG) error {
	const (
		unvisited = iota
		inProgress
		done
	)

	state := make(map[string]int, g.NodeCount())
	levels := make(map[string]int, g.NodeCount())

	var level func(id string) (int, error)
	level = func(id string) (int, error) {
		switch state[id] {
		case done:
			return levels[id], nil
		case inProgress:
			return 0, fmt.Errorf("%w: revisited %q", dag.ErrGraphHasCycle, id)
		}

		state[id] = inProgress
		lvl := 0
		for _, below := range g.Parents(id) {
			l, err := level(below)
			if err != nil {
				return 0, err
			}
			lvl = max(lvl, l+1)
		}
		state[id] = done
		levels[id] = lvl
		return lvl, nil
	}

	for _, n := range g.Nodes() {
		if _, err := level(n.ID); err != nil {
			return err
		}
	}

	g.SetLevels(levels)
	return nil
}
