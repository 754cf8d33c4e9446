package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/pipeline"
	"github.com/matzehuels/hasse/pkg/poset"
)

func TestFormatStats(t *testing.T) {
	s := pipeline.Stats{NodeCount: 6, EdgeCount: 7, MaxLevel: 3, RedundantRemoved: 5}
	got := formatStats(s, false)
	for _, want := range []string{"6 elements", "7 covering pairs", "4 levels", "5 implied relations dropped"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatStats missing %q: %s", want, got)
		}
	}

	got = formatStats(pipeline.Stats{NodeCount: 1}, true)
	if strings.Contains(got, "implied") {
		t.Errorf("no redundant relations should be reported: %s", got)
	}
}

func TestLevelTable(t *testing.T) {
	d, err := pipeline.ComputeHasseDiagram(poset.Divisibility([]uint64{1, 2, 3, 6}))
	if err != nil {
		t.Fatal(err)
	}
	out := levelTable(d)
	for _, want := range []string{"Level", "Elements", "1", "2", "3", "6"} {
		if !strings.Contains(out, want) {
			t.Errorf("level table missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	first := -1
	for i, l := range lines {
		if strings.Contains(l, "Level") {
			first = i
			break
		}
	}
	// header, separator, then the top level holding only 6
	if first < 0 || first+2 >= len(lines) || !strings.Contains(lines[first+2], " 6 ") {
		t.Errorf("top level should come first:\n%s", out)
	}
}

func TestLevelTableEmpty(t *testing.T) {
	out := levelTable(graph.Diagram{})
	if !strings.Contains(out, "Level") {
		t.Errorf("empty table should still carry headers:\n%s", out)
	}
}

func TestExamplesTable(t *testing.T) {
	out := examplesTable(poset.Examples())
	for _, want := range []string{"divisors-12", "pentagon", "divisibility", "relations"} {
		if !strings.Contains(out, want) {
			t.Errorf("examples table missing %q:\n%s", want, out)
		}
	}
}
