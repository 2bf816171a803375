// Package core defines the directed-graph contract Graph[K] and its two
// concrete backends: AdjacencyList and AdjacencyMatrix.
//
// The contract is deliberately small: vertex and edge queries, edge mutation,
// degree queries, and adjacency enumeration (bulk sets and lazy iterators),
// all addressed by caller-supplied vertex keys of any comparable type K.
// The vertex-key set is fixed at construction — there are no add/remove
// vertex operations — so every backend can rely on a stable key space for
// the lifetime of the instance.
//
// The two backends make opposite complexity trade-offs behind one interface:
//
//	              AdjacencyList        AdjacencyMatrix
//	construction  O(V)                 O(V²)
//	AddEdge       O(deg)               O(1)
//	HasEdge       O(deg)               O(1)
//	OutDegree     O(1)                 O(V)
//	SuccessorSet  O(deg)               O(V)
//	NumEdges      O(V)                 O(V²)
//	memory        O(V+E)               O(V²)
//
// Algorithms elsewhere in this module (scc, path) call only Graph[K] and
// never a concrete backend, so either representation can be swapped freely.
//
// Concurrency: backends are plain single-threaded data structures with no
// internal locking. Concurrent mutation requires external mutual exclusion;
// concurrent reads without a writer are safe. Mutating adjacency while an
// iterator over it is live is out of contract — results are unspecified but
// internal state is never corrupted.
//
// Errors:
//
//	ErrVertexNotFound    - an operation referenced a key outside the fixed key space.
//	ErrIteratorExhausted - Iterator.Next was called with no elements remaining.
package core
