// Package nodelink renders Hasse diagrams as node-link drawings with
// Graphviz.
//
// # Overview
//
// Elements are drawn as circles and covering relations as plain lines. The
// DOT source is the intermediate representation, so a diagram can be
// re-rendered or post-processed with any Graphviz tool.
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Ranking versus Pinning
//
// By default Graphviz's dot engine ranks the nodes itself; rank=same groups
// keep every level on one row. With Options.Pinned the computed layout
// coordinates are passed through as pinned neato positions, which is the
// only way to get a circular layout out of Graphviz unchanged.
//
// # Graphviz
//
// Rendering uses github.com/goccy/go-graphviz, which embeds Graphviz as
// WebAssembly; no system installation is required.
package nodelink
