package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", pipeline.DefaultFormats},
		{"svg", []string{"svg"}},
		{"json, dot ,svg", []string{"json", "dot", "svg"}},
		{",,pdf,", []string{"pdf"}},
		{" , ", pipeline.DefaultFormats},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", defaultOutputBase},
		{"out", "out"},
		{"out.svg", "out"},
		{"dir/out.json", "dir/out"},
		{"out.canvas.svg", "out"},
		{"out.png", "out.png"},
	}
	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    []string
	}{
		{"single explicit", []string{"svg"}, "graph.svg", []string{"graph.svg"}},
		{"single no output", []string{"dot"}, "", []string{"hasse.dot"}},
		{"multi", []string{"json", "svg"}, "out", []string{"out.json", "out.svg"}},
		{"multi with ext", []string{"json", "canvas-svg", "pdf"}, "out.json", []string{"out.json", "out.canvas.svg", "out.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.formats, tt.output); !slices.Equal(got, tt.want) {
				t.Errorf("outputPaths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"json": []byte(`{}`),
		"dot":  []byte("digraph {}"),
	}

	paths, err := writeArtifacts(artifacts, []string{"json", "dot"}, filepath.Join(dir, "nested", "out"))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	for i, format := range []string{"json", "dot"} {
		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatalf("read %s: %v", paths[i], err)
		}
		if !bytes.Equal(data, artifacts[format]) {
			t.Errorf("%s = %q, want %q", paths[i], data, artifacts[format])
		}
	}

	if _, err := writeArtifacts(artifacts, []string{"pdf"}, filepath.Join(dir, "x.pdf")); err == nil {
		t.Error("expected error for missing artifact")
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rel.txt")
	if err := os.WriteFile(path, []byte("a < b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "a < b\n" {
		t.Errorf("readInput = %q", data)
	}
	if _, err := readInput(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

// newTestCLI returns a CLI with a quiet logger and an isolated environment.
func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })

	return New(io.Discard, log.ErrorLevel)
}

func runCommand(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestRootCommand(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"diagram", "layout", "examples", "serve", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
}

func TestDiagramCommand(t *testing.T) {
	c := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "divisors")

	err := runCommand(t, c, "diagram",
		"--divisibility", "1,2,3,4,6,12",
		"-f", "json,dot",
		"-o", base,
		"--no-cache")
	if err != nil {
		t.Fatalf("diagram: %v", err)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var d graph.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("decode diagram: %v", err)
	}
	if len(d.Nodes) != 6 || len(d.Edges) != 7 {
		t.Errorf("diagram has %d nodes, %d edges; want 6, 7", len(d.Nodes), len(d.Edges))
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.Contains(string(dot), "digraph") {
		t.Errorf("dot output missing digraph header: %s", dot)
	}
}

func TestDiagramCommandRelationsFile(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	rel := filepath.Join(dir, "rel.txt")
	if err := os.WriteFile(rel, []byte("a < b\nb < c\na < c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "chain.json")

	err := runCommand(t, c, "diagram",
		"--elements", "a,b,c",
		"--relations-file", rel,
		"-f", "json",
		"-o", out,
		"--no-cache")
	if err != nil {
		t.Fatalf("diagram: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var d graph.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatal(err)
	}
	if len(d.Edges) != 2 {
		t.Errorf("edges = %v, want the two covering pairs", d.Edges)
	}
}

func TestDiagramCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"diagram", "--no-cache", "-f", "json"}},
		{"two sources", []string{"diagram", "--divisibility", "1,2", "--example", "pentagon", "--no-cache"}},
		{"cycle", []string{"diagram", "--elements", "a,b", "--relations", "a < b\nb < a", "--no-cache"}},
		{"bad format", []string{"diagram", "--divisibility", "1,2", "-f", "png", "--no-cache"}},
		{"bad layout", []string{"diagram", "--divisibility", "1,2", "--layout", "spiral", "--no-cache"}},
		{"both relation flags", []string{"diagram", "--elements", "a", "--relations", "a,a", "--relations-file", "x", "--no-cache"}},
		{"unknown example", []string{"diagram", "--example", "nope", "--no-cache"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			args := append(tt.args, "-o", filepath.Join(t.TempDir(), "out"))
			if err := runCommand(t, c, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDiagramCommandConfigDefaults(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Layout = "circular"
	c.Config.Formats = []string{"json"}
	out := filepath.Join(t.TempDir(), "n5")

	if err := runCommand(t, c, "diagram", "--example", "pentagon", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("diagram: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var d graph.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatal(err)
	}
	if d.Layout != "circular" {
		t.Errorf("layout = %q, want circular from config", d.Layout)
	}
}

func TestCompleteExamples(t *testing.T) {
	got, directive := completeExamples(&cobra.Command{}, nil, "pen")
	if len(got) != 1 || !strings.HasPrefix(got[0], "pentagon\t") {
		t.Errorf("completeExamples(pen) = %v", got)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}

	all, _ := completeExamples(&cobra.Command{}, nil, "")
	if len(all) < 3 {
		t.Errorf("completeExamples('') = %v", all)
	}
}

func TestCacheCommands(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = filepath.Join(t.TempDir(), "cache")
	out := filepath.Join(t.TempDir(), "d")

	if err := runCommand(t, c, "diagram", "--divisibility", "1,2,4", "-f", "json,dot", "-o", out); err != nil {
		t.Fatalf("diagram: %v", err)
	}
	entries, err := os.ReadDir(c.Config.CacheDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected cache entries in %s (err=%v)", c.Config.CacheDir, err)
	}

	if err := runCommand(t, c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	var files int
	_ = filepath.WalkDir(c.Config.CacheDir, func(_ string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files++
		}
		return nil
	})
	if files != 0 {
		t.Errorf("%d files left after clear", files)
	}
}

func TestCachePathCommand(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = "/tmp/hasse-cache"

	root := c.RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "/tmp/hasse-cache" {
		t.Errorf("cache path = %q", buf.String())
	}
}

func TestLayoutCommand(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "divisors.json")

	if err := runCommand(t, c, "diagram", "--divisibility", "1,2,3,6", "-f", "json", "-o", src, "--no-cache"); err != nil {
		t.Fatalf("diagram: %v", err)
	}

	out := filepath.Join(dir, "circle")
	if err := runCommand(t, c, "layout", src, "--layout", "circular", "-f", "json,svg", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	d, err := graph.ReadDiagramFile(out + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if d.Layout != "circular" {
		t.Errorf("layout = %q, want circular", d.Layout)
	}
	if !d.HasCoordinates() {
		t.Error("every node should be placed")
	}
	if _, err := os.Stat(out + ".svg"); err != nil {
		t.Errorf("svg not written: %v", err)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"nodes":[{"id":"a"}],"edges":[{"source":"a","target":"z"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	negative := filepath.Join(dir, "negative.json")
	if err := os.WriteFile(negative, []byte(`{"nodes":[{"id":"a","level":-2}],"edges":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"nodes":[{"id":"a","level":0}],"edges":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"layout", filepath.Join(dir, "nope.json")}},
		{"unknown edge target", []string{"layout", bad}},
		{"negative level", []string{"layout", negative}},
		{"bad layout", []string{"layout", good, "--layout", "spiral"}},
		{"no args", []string{"layout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			args := append(tt.args, "--no-cache", "-o", filepath.Join(t.TempDir(), "out.json"))
			if err := runCommand(t, c, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
