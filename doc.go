// Package digraph is a small, generic, in-memory directed-graph toolkit:
// one abstract contract, two interchangeable storage backends, and a few
// algorithms written purely against the contract.
//
// 🚀 What is digraph?
//
//	A dependency-light library built around three pieces:
//		• core/ — the Graph[K] contract plus its two realizations:
//		  AdjacencyList (sparse-friendly, O(V) construction) and
//		  AdjacencyMatrix (dense, O(1) edge tests)
//		• scc/  — strongly-connected-component extraction
//		• path/ — unweighted shortest paths and a parallel
//		  longest-shortest-path estimator
//
// ✨ Why choose digraph?
//
//   - Backend-agnostic algorithms – every traversal calls only core.Graph[K],
//     so either representation can be swapped without touching a line of SCC
//     or shortest-path logic
//   - Generic keys – any comparable type names a vertex; the key is the handle
//   - Predictable costs – each backend documents its complexity trade-offs,
//     and the contract pins down iterator and error semantics exactly
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    │   ▼
//	    D◀──C
//
//	a directed 4-cycle: one strongly connected component {A,B,C,D}.
//
// Both backends are built once from a fixed vertex-key set and start with no
// edges; edges are then added and removed freely, but vertices never change.
// See each package's doc.go for contracts, complexity notes, and examples.
//
//	go get github.com/katalvlaran/digraph
package digraph
