// Package pkg provides the core libraries for hasse, a Hasse diagram engine.
//
// # Overview
//
// hasse turns a finite partially ordered set into its Hasse diagram: the
// declared relation is closed transitively, every implied pair is dropped so
// only covering pairs remain, each element gets a level, and the diagram is
// laid out for drawing. The pkg directory is organized into these areas:
//
//  1. [poset] - Poset construction (text input, divisibility, bundled examples)
//  2. [core/dag] - Directed graph structure and the order-theoretic transforms
//  3. [core/layout] - Hierarchical and circular coordinate assignment
//  4. [graph] - The Diagram wire format shared by every consumer
//  5. [pipeline] - Orchestration (build → diagram → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	elements + relations | numbers | example name
//	         ↓
//	    [poset] package (validated element set and relation list)
//	         ↓
//	    [core/dag/transform] package (closure, reduction, levels)
//	         ↓
//	    [core/layout] package (x/y per node)
//	         ↓
//	    JSON/DOT/SVG/PDF output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/hasse/pkg/pipeline"
//	    "github.com/matzehuels/hasse/pkg/poset"
//	)
//
//	p, _ := poset.GenerateDivisibility("1, 2, 3, 4, 6, 12")
//	d, _ := pipeline.ComputeHasseDiagram(p)
//	d, _ = pipeline.ComputeLayout(d, "hierarchical", 100)
//
// # Main Packages
//
// [core/dag/transform] - [transform.TransitiveClosure] (Warshall),
// [transform.TransitiveReduction], [transform.AssignLevels] and
// [transform.FindCycle]. [transform.Reduce] runs them in order.
//
// [render/nodelink] - DOT output and Graphviz SVG rendering.
//
// [render/canvas] - Native SVG and PDF drawing of laid-out diagrams.
//
// [cache] - File, Redis and null caches keyed by content hashes.
//
// [api] - JSON HTTP API over the pipeline.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/dag/...           # Specific package
//	go test -run Example                 # Examples only
//
// [poset]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/poset
// [core/dag]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag
// [core/dag/transform]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/layout
// [graph]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/pipeline
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/render/nodelink
// [render/canvas]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/render/canvas
// [cache]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/observability
// [transform.TransitiveClosure]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform#TransitiveClosure
// [transform.TransitiveReduction]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform#TransitiveReduction
// [transform.AssignLevels]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform#AssignLevels
// [transform.FindCycle]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform#FindCycle
// [transform.Reduce]: https://pkg.go.dev/github.com/matzehuels/hasse/pkg/core/dag/transform#Reduce
package pkg
