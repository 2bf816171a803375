package core

// Graph is the abstract directed-graph contract shared by every backend.
//
// K is the vertex-key type: an opaque, immutable, comparable value that
// serves both as vertex identity and as the external handle. The key set
// is fixed when a backend is constructed and never changes afterwards.
//
// A directed edge is an ordered pair (from, to) of keys; a given pair is
// either present or absent (no weights, no parallel edges). Self-loops
// are permitted. Operations taking keys return ErrVertexNotFound when a
// key lies outside the backend's key space; the boolean results of
// AddEdge and RemoveEdge report whether state actually changed and are
// never errors.
type Graph[K comparable] interface {
	// Size returns the number of vertices. Never fails.
	Size() int

	// NumEdges returns the total directed edge count.
	// Cost is backend-dependent: O(V) for lists, O(V²) for matrices.
	NumEdges() int

	// HasVertex reports whether key belongs to the fixed key space.
	HasVertex(key K) bool

	// AddEdge inserts the directed edge from→to.
	// Returns true if the edge was absent and is now present,
	// false (and no mutation) if it already existed,
	// or ErrVertexNotFound if either endpoint is unknown.
	AddEdge(from, to K) (bool, error)

	// RemoveEdge deletes the directed edge from→to.
	// Returns true if the edge was present and is now absent,
	// false (and no mutation) if it did not exist,
	// or ErrVertexNotFound if either endpoint is unknown.
	RemoveEdge(from, to K) (bool, error)

	// HasEdge reports whether the directed edge from→to is present.
	// Returns ErrVertexNotFound if either endpoint is unknown.
	HasEdge(from, to K) (bool, error)

	// OutDegree returns the number of successors of key.
	OutDegree(key K) (int, error)

	// InDegree returns the number of predecessors of key.
	InDegree(key K) (int, error)

	// KeySet returns every vertex key exactly once, in no defined order.
	// The returned set is a copy; mutating it does not affect the graph.
	KeySet() map[K]struct{}

	// SuccessorSet returns the (possibly empty) set of keys directly
	// reachable from key by one edge.
	SuccessorSet(key K) (map[K]struct{}, error)

	// PredecessorSet returns the (possibly empty) set of keys with an
	// edge into key.
	PredecessorSet(key K) (map[K]struct{}, error)

	// SuccessorIterator returns a lazy iterator over the successors of key.
	// Iteration order is backend-defined but stable while adjacency is
	// unmodified; mutation during iteration is out of contract.
	SuccessorIterator(key K) (Iterator[K], error)

	// PredecessorIterator returns a lazy iterator over the predecessors of key.
	PredecessorIterator(key K) (Iterator[K], error)
}

// Iterator is a forward-only lazy sequence of vertex keys.
// It produces each adjacent key exactly once and is not safe for
// concurrent use.
type Iterator[K comparable] interface {
	// HasNext reports whether another key remains. It peeks without
	// consuming; calling it repeatedly is harmless.
	HasNext() bool

	// Next returns the next key, or ErrIteratorExhausted when the
	// sequence has ended.
	Next() (K, error)
}

// Compile-time interface conformance checks for both backends.
var (
	_ Graph[string] = (*AdjacencyList[string])(nil)
	_ Graph[string] = (*AdjacencyMatrix[string])(nil)
)
