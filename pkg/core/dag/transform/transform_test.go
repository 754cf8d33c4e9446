package transform

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/matzehuels/hasse/pkg/core/dag"
)

func build(t *testing.T, ids []string, pairs [][2]string) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, id := range ids {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for _, p := range pairs {
		if err := g.AddEdge(dag.Edge{From: p[0], To: p[1]}); err != nil {
			t.Fatalf("AddEdge(%q, %q): %v", p[0], p[1], err)
		}
	}
	return g
}

func divisibility(t *testing.T, nums ...int) *dag.DAG {
	t.Helper()
	var ids []string
	var pairs [][2]string
	for _, a := range nums {
		ids = append(ids, strconv.Itoa(a))
		for _, b := range nums {
			if a != b && b%a == 0 {
				pairs = append(pairs, [2]string{strconv.Itoa(a), strconv.Itoa(b)})
			}
		}
	}
	return build(t, ids, pairs)
}

func edgeKeys(g *dag.DAG) []string {
	var keys []string
	for _, e := range g.Edges() {
		keys = append(keys, e.From+","+e.To)
	}
	slices.Sort(keys)
	return keys
}

func TestTransitiveClosure(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		pairs [][2]string
		want  []string
	}{
		{"empty", nil, nil, nil},
		{"no relations", []string{"a", "b"}, nil, nil},
		{"chain", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}}, []string{"a,b", "a,c", "b,c"}},
		{
			"long chain",
			[]string{"a", "b", "c", "d"},
			[][2]string{{"c", "d"}, {"b", "c"}, {"a", "b"}},
			[]string{"a,b", "a,c", "a,d", "b,c", "b,d", "c,d"},
		},
		{
			"diamond",
			[]string{"0", "x", "y", "1"},
			[][2]string{{"0", "x"}, {"0", "y"}, {"x", "1"}, {"y", "1"}},
			[]string{"0,1", "0,x", "0,y", "x,1", "y,1"},
		},
		{"duplicate edges", []string{"a", "b"}, [][2]string{{"a", "b"}, {"a", "b"}}, []string{"a,b"}},
		{"cycle", []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}}, []string{"a,a", "a,b", "b,a", "b,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := TransitiveClosure(build(t, tt.ids, tt.pairs))
			got := c.Keys()
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Keys() = %v, want %v", got, tt.want)
			}
			if c.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.want))
			}
		})
	}
}

func TestTransitiveClosureIsTransitive(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 5, 6, 8, 10, 12, 24, 30, 60)
	c := TransitiveClosure(g)

	for _, ab := range c.Pairs() {
		for _, bc := range c.Pairs() {
			if ab.Upper != bc.Lower {
				continue
			}
			if !c.Contains(ab.Lower, bc.Upper) {
				t.Errorf("(%s,%s) and (%s,%s) present but (%s,%s) missing",
					ab.Lower, ab.Upper, bc.Lower, bc.Upper, ab.Lower, bc.Upper)
			}
		}
	}
	for _, e := range g.Edges() {
		if !c.Contains(e.From, e.To) {
			t.Errorf("declared edge (%s,%s) missing from closure", e.From, e.To)
		}
	}
}

func TestClosureContainsUnknown(t *testing.T) {
	c := TransitiveClosure(build(t, []string{"a", "b"}, [][2]string{{"a", "b"}}))
	if c.Contains("a", "zzz") || c.Contains("zzz", "b") {
		t.Error("Contains should be false for unknown elements")
	}
	if got := c.Above("zzz"); got != nil {
		t.Errorf("Above(unknown) = %v, want nil", got)
	}
	if got := c.Above("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Above(a) = %v, want [b]", got)
	}
}

func TestTransitiveReduction(t *testing.T) {
	tests := []struct {
		name        string
		ids         []string
		pairs       [][2]string
		wantEdges   []string
		wantRemoved int
	}{
		{"empty", nil, nil, nil, 0},
		{"chain shortcut", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}}, []string{"a,b", "b,c"}, 1},
		{"already reduced", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}}, []string{"a,b", "b,c"}, 0},
		{"duplicate redundant edges", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"a", "c"}}, []string{"a,b", "b,c"}, 2},
		{
			"antichain plus one",
			[]string{"a", "b", "c"},
			[][2]string{{"a", "c"}},
			[]string{"a,c"},
			0,
		},
		{
			"two cycle is kept",
			[]string{"a", "b"},
			[][2]string{{"a", "b"}, {"b", "a"}},
			[]string{"a,b", "b,a"},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.ids, tt.pairs)
			removed := TransitiveReduction(g, nil)
			if removed != tt.wantRemoved {
				t.Errorf("removed = %d, want %d", removed, tt.wantRemoved)
			}
			if got := edgeKeys(g); !slices.Equal(got, tt.wantEdges) {
				t.Errorf("edges = %v, want %v", got, tt.wantEdges)
			}
		})
	}
}

func TestTransitiveReductionDivisibility(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 6, 12)
	TransitiveReduction(g, nil)

	want := []string{"1,2", "1,3", "2,4", "2,6", "3,6", "4,12", "6,12"}
	if got := edgeKeys(g); !slices.Equal(got, want) {
		t.Errorf("edges = %v, want %v", got, want)
	}
}

func TestTransitiveReductionIdempotent(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 6, 8, 12, 24)
	TransitiveReduction(g, nil)
	first := edgeKeys(g)

	if removed := TransitiveReduction(g, nil); removed != 0 {
		t.Errorf("second reduction removed %d edges, want 0", removed)
	}
	if got := edgeKeys(g); !slices.Equal(got, first) {
		t.Errorf("edges changed on second reduction: %v -> %v", first, got)
	}
}

func TestTransitiveReductionPreservesClosure(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 5, 6, 10, 12, 15, 30, 60)
	before := TransitiveClosure(g).Keys()

	TransitiveReduction(g, nil)
	after := TransitiveClosure(g).Keys()

	slices.Sort(before)
	slices.Sort(after)
	if !slices.Equal(before, after) {
		t.Errorf("closure changed by reduction:\nbefore %v\nafter  %v", before, after)
	}
}

func TestCoveringPairsDoesNotMutate(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	pairs := CoveringPairs(g, nil)
	if len(pairs) != 2 {
		t.Errorf("CoveringPairs = %v, want 2 pairs", pairs)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3 (input untouched)", g.EdgeCount())
	}
}

func TestAssignLevels(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 6, 12)
	TransitiveReduction(g, nil)
	if err := AssignLevels(g); err != nil {
		t.Fatalf("AssignLevels: %v", err)
	}

	want := map[string]int{"1": 0, "2": 1, "3": 1, "4": 2, "6": 2, "12": 3}
	for id, lvl := range want {
		n, _ := g.Node(id)
		if n.Level != lvl {
			t.Errorf("level(%s) = %d, want %d", id, n.Level, lvl)
		}
	}
}

func TestAssignLevelsMonotone(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 5, 6, 10, 15, 30, 7, 14)
	if err := AssignLevels(g); err != nil {
		t.Fatalf("AssignLevels: %v", err)
	}
	for _, e := range g.Edges() {
		src, _ := g.Node(e.From)
		dst, _ := g.Node(e.To)
		if dst.Level <= src.Level {
			t.Errorf("edge %s->%s: level %d not above %d", e.From, e.To, dst.Level, src.Level)
		}
	}
	for _, n := range g.Nodes() {
		if g.InDegree(n.ID) == 0 && n.Level != 0 {
			t.Errorf("minimal element %s has level %d", n.ID, n.Level)
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate after AssignLevels: %v", err)
	}
}

func TestAssignLevelsLongestPath(t *testing.T) {
	// a < b < c < d and a < d: d sits on level 3, not 1
	g := build(t, []string{"d", "c", "b", "a"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}})
	if err := AssignLevels(g); err != nil {
		t.Fatalf("AssignLevels: %v", err)
	}
	if n, _ := g.Node("d"); n.Level != 3 {
		t.Errorf("level(d) = %d, want 3", n.Level)
	}
}

func TestAssignLevelsCycle(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	err := AssignLevels(g)
	if !errors.Is(err, dag.ErrGraphHasCycle) {
		t.Errorf("AssignLevels error = %v, want ErrGraphHasCycle", err)
	}
}

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		pairs [][2]string
		want  []string
	}{
		{"empty", nil, nil, nil},
		{"acyclic", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, nil},
		{"two cycle", []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}}, []string{"a", "b", "a"}},
		{"self loop", []string{"a"}, [][2]string{{"a", "a"}}, []string{"a", "a"}},
		{
			"cycle behind a source",
			[]string{"s", "x", "y"},
			[][2]string{{"s", "x"}, {"x", "y"}, {"y", "x"}},
			[]string{"x", "y", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCycle(build(t, tt.ids, tt.pairs))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindCycle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReduce(t *testing.T) {
	g := divisibility(t, 1, 2, 3, 4, 6, 12)
	res, err := Reduce(g)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	// 1,2,3,4,6,12 under divisibility: 12 strict pairs
	if res.ClosurePairs != 12 {
		t.Errorf("ClosurePairs = %d, want 12", res.ClosurePairs)
	}
	if res.RedundantEdgesRemoved != 5 {
		t.Errorf("RedundantEdgesRemoved = %d, want 5", res.RedundantEdgesRemoved)
	}
	if res.MaxLevel != 3 {
		t.Errorf("MaxLevel = %d, want 3", res.MaxLevel)
	}
	if g.EdgeCount() != 7 {
		t.Errorf("EdgeCount = %d, want 7", g.EdgeCount())
	}
}

func TestReduceCycle(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	_, err := Reduce(g)

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Reduce error = %v, want *CycleError", err)
	}
	if !errors.Is(err, dag.ErrGraphHasCycle) {
		t.Error("CycleError should unwrap to ErrGraphHasCycle")
	}
	if want := []string{"a", "b", "c", "a"}; !slices.Equal(cycleErr.Path, want) {
		t.Errorf("Path = %v, want %v", cycleErr.Path, want)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3 (untouched)", g.EdgeCount())
	}
}

func TestReduceWithOptionsSkipReduction(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	res, err := ReduceWithOptions(g, ReduceOptions{SkipTransitiveReduction: true})
	if err != nil {
		t.Fatalf("ReduceWithOptions: %v", err)
	}
	if res.Closure != nil || res.RedundantEdgesRemoved != 0 {
		t.Errorf("reduction ran: %+v", res)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
	if res.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, want 2", res.MaxLevel)
	}
}
