package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hasse/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the level number in node labels.
	// When false, only the element ID is shown.
	Detailed bool

	// Pinned places nodes at the diagram's computed coordinates instead of
	// letting Graphviz rank them. Nodes without coordinates fall back to
	// ranking.
	Pinned bool
}

// ToDOT converts a Hasse diagram to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Edges point from lower to upper elements and are drawn without arrow
// heads; rankdir=BT puts minimal elements at the bottom. Nodes sharing a
// level are grouped with rank=same so Graphviz keeps the levels aligned.
func ToDOT(d graph.Diagram, opts Options) string {
	pinned := opts.Pinned && d.HasCoordinates()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if pinned {
		buf.WriteString("  layout=neato;\n")
		buf.WriteString("  inputscale=72;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.4, fixedsize=shape];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed), pinned)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	if !pinned {
		for _, ids := range d.Levels() {
			if len(ids) < 2 {
				continue
			}
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = strconv.Quote(id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
		}
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}
	return fmt.Sprintf("%s\nlevel %d", n.ID, n.Level)
}

func fmtAttrs(n graph.Node, label string, pinned bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if pinned {
		x, y := n.Position()
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtCoord(x), fmtCoord(y)))
	}
	return attrs
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render converts the diagram to DOT and renders it to SVG.
func Render(d graph.Diagram, opts Options) ([]byte, error) {
	return RenderSVG(ToDOT(d, opts))
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
