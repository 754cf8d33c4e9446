package dag

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()

	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID: got %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate ID: got %v, want %v", err, ErrDuplicateNodeID)
	}

	if _, ok := g.Node("a"); !ok {
		t.Fatal("node a not found")
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"valid", Edge{From: "a", To: "b"}, nil},
		{"unknown source", Edge{From: "x", To: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: "a", To: "x"}, ErrUnknownTargetNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%v) = %v, want %v", tt.edge, err, tt.want)
			}
		})
	}

	if !g.HasEdge("a", "b") {
		t.Error("HasEdge(a, b) = false, want true")
	}
	if g.HasEdge("b", "a") {
		t.Error("HasEdge(b, a) = true, want false")
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "c"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	g.RemoveEdge("a", "b")

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if g.HasEdge("a", "b") {
		t.Error("edge a→b should be gone")
	}
	if got := g.Parents("b"); len(got) != 0 {
		t.Errorf("Parents(b) = %v, want empty", got)
	}

	// Removing a missing edge is a no-op
	g.RemoveEdge("c", "a")
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	g := New()
	ids := []string{"z", "a", "m", "b"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}

	got := NodeIDs(g.Nodes())
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Nodes() = %v, want %v", got, ids)
		}
	}
}

func TestLevels(t *testing.T) {
	g := New()
	if g.MaxLevel() != 0 {
		t.Errorf("empty MaxLevel = %d, want 0", g.MaxLevel())
	}
	if len(g.Levels()) != 0 {
		t.Errorf("empty Levels = %v, want none", g.Levels())
	}

	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddNode(Node{ID: "c"})
	g.SetLevels(map[string]int{"b": 2, "c": 1, "missing": 5})

	if g.MaxLevel() != 2 {
		t.Errorf("MaxLevel = %d, want 2", g.MaxLevel())
	}
	levels := g.Levels()
	if len(levels) != 3 || levels[0] != 0 || levels[2] != 2 {
		t.Errorf("Levels = %v, want [0 1 2]", levels)
	}
	if got := NodeIDs(g.NodesInLevel(1)); len(got) != 1 || got[0] != "c" {
		t.Errorf("NodesInLevel(1) = %v, want [c]", got)
	}
}

func TestClone(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b", Level: 1})
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	c := g.Clone()
	c.RemoveEdge("a", "b")
	n, _ := c.Node("b")
	n.Level = 7

	if g.EdgeCount() != 1 {
		t.Error("clone edge removal leaked into original")
	}
	if orig, _ := g.Node("b"); orig.Level != 1 {
		t.Error("clone level change leaked into original")
	}
	if c.NodeCount() != 2 {
		t.Errorf("clone NodeCount = %d, want 2", c.NodeCount())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *DAG
		want  error
	}{
		{
			name: "valid",
			build: func() *DAG {
				g := New()
				_ = g.AddNode(Node{ID: "a"})
				_ = g.AddNode(Node{ID: "b", Level: 2})
				_ = g.AddEdge(Edge{From: "a", To: "b"})
				return g
			},
		},
		{
			name: "edge does not climb",
			build: func() *DAG {
				g := New()
				_ = g.AddNode(Node{ID: "a", Level: 1})
				_ = g.AddNode(Node{ID: "b", Level: 1})
				_ = g.AddEdge(Edge{From: "a", To: "b"})
				return g
			},
			want: ErrLevelOrder,
		},
		{
			name: "empty",
			build: func() *DAG {
				return New()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.build().Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDetectCycles(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "a"})

	if err := g.detectCycles(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("detectCycles() = %v, want %v", err, ErrGraphHasCycle)
	}
}
