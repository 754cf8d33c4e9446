// Package layout assigns 2D coordinates to the nodes of a Hasse diagram.
//
// # Strategies
//
// [Hierarchical] stacks levels vertically: level L sits at y = L·levelHeight
// and the nodes of a level are spread horizontally with a fixed pitch of
// [Pitch] units, centred on x = 0. Nodes keep their diagram order within a
// level, so the same input always yields the same picture.
//
// [Circular] ignores levels and places all nodes on one circle around the
// origin, in diagram order, starting at angle 0 and going counter-clockwise
// in mathematical orientation. The radius grows with the node count and
// never falls below [MinRadius].
//
// # Coordinates
//
// Coordinates use a y-up convention: higher levels get larger y values.
// Renderers that draw in a y-down space flip the axis themselves.
//
// [Apply] writes coordinates in place through indexed access to
// Diagram.Nodes; callers that need the unplaced diagram should pass a
// [graph.Diagram.Clone].
package layout
