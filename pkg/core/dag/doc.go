// Package dag provides the directed graph that the Hasse diagram pipeline
// operates on.
//
// # Overview
//
// A poset is handed to the pipeline as a set of elements plus declared
// "a is below b" relations. This package stores those as nodes and edges,
// keeps the order in which elements were declared, and carries the level
// (depth above the minimal elements) that the [transform] package assigns.
//
// # Basic Usage
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "a"})
//	g.AddNode(dag.Node{ID: "b"})
//	g.AddEdge(dag.Edge{From: "a", To: "b"}) // a < b
//
// Query the graph structure with [DAG.Children] (elements directly above),
// [DAG.Parents] (elements directly below), [DAG.NodesInLevel] and related
// methods. Use [DAG.Validate] to verify that every edge climbs to a higher
// level and that the graph has no cycle.
//
// # Ordering
//
// [DAG.Nodes], [DAG.Sources], [DAG.Sinks] and [DAG.NodesInLevel] return
// nodes in insertion order. Layouts rely on this to keep a stable left to
// right order within a level.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
//
// [transform]: github.com/matzehuels/hasse/pkg/core/dag/transform
package dag
