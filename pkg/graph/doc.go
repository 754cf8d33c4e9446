// Package graph provides the serialization types for Hasse diagrams.
//
// This package defines the canonical wire format for hasse's diagram data,
// used for JSON files, API responses, caching, and renderer input.
//
// # Architecture
//
// The package sits at the serialization boundary between the internal graph
// and external formats:
//
//   - [Diagram], [Node], [Edge]: Serialization types (this package)
//   - pkg/core/dag.DAG: Internal graph representation used by the algorithms
//
// Use [FromDAG]/[ToDAG] to convert between them.
//
// # Diagram Format
//
// Diagrams use a simple node-link JSON format. Edges point upwards, from the
// covered element to the element that covers it:
//
//	{
//	  "nodes": [
//	    {"id": "1", "level": 0, "x": 0, "y": 0},
//	    {"id": "2", "level": 1, "x": 0, "y": 100}
//	  ],
//	  "edges": [{"source": "1", "target": "2"}],
//	  "layout": "hierarchical",
//	  "level_height": 100
//	}
//
// x and y are omitted until a layout has been applied.
//
// Common operations:
//
//	d, _ := graph.ReadDiagramFile("diagram.json")  // File → Diagram
//	graph.WriteDiagramFile(d, "output.json")       // Diagram → File
//	data, _ := graph.MarshalDiagram(d)             // Diagram → []byte
//
// # Concurrency
//
// Diagrams are plain values. Use [Diagram.Clone] before handing one to code
// that writes coordinates if the original must stay untouched.
package graph
