package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/hasse/pkg/graph"
)

func ptr(v float64) *float64 { return &v }

func divisorsOf6() graph.Diagram {
	return graph.Diagram{
		Nodes: []graph.Node{
			{ID: "1", Level: 0},
			{ID: "2", Level: 1},
			{ID: "3", Level: 1},
			{ID: "6", Level: 2},
		},
		Edges: []graph.Edge{
			{Source: "1", Target: "2"},
			{Source: "1", Target: "3"},
			{Source: "2", Target: "6"},
			{Source: "3", Target: "6"},
		},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(divisorsOf6(), Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=BT",
		"arrowhead=none",
		`"1" [label="1"]`,
		`"2" -> "6"`,
		`{ rank=same; "2"; "3"; }`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "pos=") {
		t.Error("unpinned DOT should not carry positions")
	}
}

func TestToDOT_SingleNodeLevelsNotGrouped(t *testing.T) {
	dot := ToDOT(divisorsOf6(), Options{})
	if strings.Count(dot, "rank=same") != 1 {
		t.Errorf("expected exactly one rank=same group:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(divisorsOf6(), Options{Detailed: true})
	if !strings.Contains(dot, `label="6\nlevel 2"`) {
		t.Errorf("ToDOT() detailed output missing level info:\n%s", dot)
	}
}

func TestToDOT_Pinned(t *testing.T) {
	d := graph.Diagram{
		Nodes: []graph.Node{
			{ID: "a", X: ptr(-50), Y: ptr(0)},
			{ID: "b", X: ptr(50), Y: ptr(100)},
		},
		Edges: []graph.Edge{{Source: "a", Target: "b"}},
	}
	dot := ToDOT(d, Options{Pinned: true})
	for _, want := range []string{"layout=neato", `pos="-50.00,0.00!"`, `pos="50.00,100.00!"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("pinned DOT missing %q:\n%s", want, dot)
		}
	}

	// Without coordinates Pinned falls back to ranking.
	dot = ToDOT(divisorsOf6(), Options{Pinned: true})
	if strings.Contains(dot, "neato") {
		t.Error("Pinned without coordinates should not switch engines")
	}
}

func TestToDOT_QuotesIdentifiers(t *testing.T) {
	d := graph.Diagram{Nodes: []graph.Node{{ID: `say "hi"`}}}
	dot := ToDOT(d, Options{})
	if !strings.Contains(dot, `"say \"hi\""`) {
		t.Errorf("identifier not quoted:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	svg, err := Render(divisorsOf6(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
