package transform

import "github.com/matzehuels/hasse/pkg/core/dag"

// Pair is an ordered pair of elements meaning "Lower is below Upper".
type Pair struct {
	Lower string
	Upper string
}

// Key returns the "a,b" string form of the pair.
func (p Pair) Key() string { return p.Lower + "," + p.Upper }

// Closure is the transitive closure of a graph's edge relation.
//
// A Closure is built once by [TransitiveClosure] and never modified
// afterwards. It may contain reflexive pairs (a,a) when the input relation
// has a cycle through a.
type Closure struct {
	ids   []string
	index map[string]int
	reach [][]bool
	size  int
}

// TransitiveClosure computes every pair (a, b) such that b is reachable from
// a by following one or more edges of g.
//
// # Algorithm
//
// TransitiveClosure seeds a reachability matrix from the edges of g and runs
// Warshall's triple loop over all elements. The intermediate element k is the
// outermost loop, which makes a single pass sufficient: after iteration k,
// reach[i][j] holds whenever j is reachable from i through intermediates
// drawn from the first k elements.
//
// Duplicate and redundant edges are tolerated. An edgeless graph yields an
// empty closure.
//
// # Performance
//
// Time complexity is O(V³) and space complexity O(V²), where V is the number
// of nodes. This is fine for interactive poset sizes (tens to a few hundred
// elements); callers should cap the element count for untrusted input.
func TransitiveClosure(g *dag.DAG) *Closure {
	nodes := g.Nodes()
	n := len(nodes)

	c := &Closure{
		ids:   dag.NodeIDs(nodes),
		index: dag.NodePosMap(nodes),
		reach: make([][]bool, n),
	}
	for i := range c.reach {
		c.reach[i] = make([]bool, n)
	}

	for _, e := range g.Edges() {
		src, okS := c.index[e.From]
		dst, okD := c.index[e.To]
		if okS && okD {
			c.reach[src][dst] = true
		}
	}

	for k := 0; k < n; k++ {
		rowK := c.reach[k]
		for i := 0; i < n; i++ {
			if !c.reach[i][k] {
				continue
			}
			rowI := c.reach[i]
			for j := 0; j < n; j++ {
				if rowK[j] {
					rowI[j] = true
				}
			}
		}
	}

	for i := range c.reach {
		for j := range c.reach[i] {
			if c.reach[i][j] {
				c.size++
			}
		}
	}
	return c
}

// Contains reports whether (a, b) is in the closure.
// Unknown elements are never contained.
func (c *Closure) Contains(a, b string) bool {
	i, okA := c.index[a]
	j, okB := c.index[b]
	return okA && okB && c.reach[i][j]
}

// Len returns the number of pairs in the closure.
func (c *Closure) Len() int { return c.size }

// Pairs returns all pairs of the closure, ordered by the insertion order of
// the lower element and then of the upper element.
func (c *Closure) Pairs() []Pair {
	pairs := make([]Pair, 0, c.size)
	for i, row := range c.reach {
		for j, ok := range row {
			if ok {
				pairs = append(pairs, Pair{Lower: c.ids[i], Upper: c.ids[j]})
			}
		}
	}
	return pairs
}

// Keys returns the "a,b" keys of all pairs, in the order of [Closure.Pairs].
func (c *Closure) Keys() []string {
	pairs := c.Pairs()
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key()
	}
	return keys
}

// Above returns every element strictly reachable from a, in insertion order.
func (c *Closure) Above(a string) []string {
	i, ok := c.index[a]
	if !ok {
		return nil
	}
	var result []string
	for j, reached := range c.reach[i] {
		if reached && j != i {
			result = append(result, c.ids[j])
		}
	}
	return result
}

// hasIntermediate reports whether some element other than a and b sits
// between them in the closure.
func (c *Closure) hasIntermediate(a, b int) bool {
	for mid := range c.ids {
		if mid == a || mid == b {
			continue
		}
		if c.reach[a][mid] && c.reach[mid][b] {
			return true
		}
	}
	return false
}
