// Package canvasrenderer draws laid-out Hasse diagrams with
// github.com/tdewolff/canvas.
//
// Unlike the Graphviz renderer in pkg/render/nodelink, this renderer never
// moves a node: every element is drawn exactly at the coordinates the layout
// engine computed, which makes it the faithful renderer for both the
// hierarchical and the circular layout.
//
// # Units
//
// Diagram coordinates are interpreted as typographic points. The drawing is
// translated so the bounding box of all nodes, padded by the node radius and
// the margin, starts at the origin. The canvas uses a y-up coordinate system,
// matching the layout convention that higher levels have larger y values.
//
// # Formats
//
//	svg, err := canvasrenderer.RenderSVG(d, canvasrenderer.Options{})
//	pdf, err := canvasrenderer.RenderPDF(d, canvasrenderer.Options{})
//
// Labels are set in the Go Regular font, embedded in the binary.
package canvasrenderer
