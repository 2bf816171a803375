package core

// listVertex is a single arena record: the vertex key plus its successor
// and predecessor adjacency, stored as arena handles in insertion order.
// Handles stay valid for the lifetime of the backend because the vertex
// set never changes after construction.
type listVertex[K comparable] struct {
	key  K
	succ []int // handles of direct successors
	pred []int // handles of direct predecessors
}

// AdjacencyList realizes Graph[K] with per-vertex successor/predecessor
// collections. Construction is O(V) and memory is O(V+E), which makes it
// the right choice for sparse graphs; edge operations cost O(degree).
//
// Invariant: for every record v and every successor handle s in v.succ,
// the record at s holds v's handle in its pred slice, and vice versa.
// Every mutator maintains both sides in the same operation.
type AdjacencyList[K comparable] struct {
	index map[K]int       // key → arena handle, fixed at construction
	arena []listVertex[K] // records addressed by handle
}

// NewAdjacencyList builds a list backend over the given vertex keys with
// zero edges. Duplicate keys collapse to one vertex. Complexity: O(V).
func NewAdjacencyList[K comparable](keys ...K) *AdjacencyList[K] {
	g := &AdjacencyList[K]{
		index: make(map[K]int, len(keys)),
		arena: make([]listVertex[K], 0, len(keys)),
	}
	for _, k := range keys {
		if _, ok := g.index[k]; ok {
			continue
		}
		g.index[k] = len(g.arena)
		g.arena = append(g.arena, listVertex[K]{key: k})
	}

	return g
}

// handles resolves two keys to arena handles, or ErrVertexNotFound if
// either lies outside the key space.
func (g *AdjacencyList[K]) handles(from, to K) (int, int, error) {
	f, ok := g.index[from]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	t, ok := g.index[to]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return f, t, nil
}

// Size returns the vertex count. Complexity: O(1).
func (g *AdjacencyList[K]) Size() int { return len(g.arena) }

// NumEdges sums out-degrees over all records. Complexity: O(V).
func (g *AdjacencyList[K]) NumEdges() int {
	var total int
	for i := range g.arena {
		total += len(g.arena[i].succ)
	}

	return total
}

// HasVertex reports whether key is in the fixed key space. Complexity: O(1).
func (g *AdjacencyList[K]) HasVertex(key K) bool {
	_, ok := g.index[key]
	return ok
}

// AddEdge inserts from→to, updating both the successor slice of from and
// the predecessor slice of to in the same operation. Duplicate detection
// is a linear scan of from's successors. Complexity: O(out-degree(from)).
func (g *AdjacencyList[K]) AddEdge(from, to K) (bool, error) {
	f, t, err := g.handles(from, to)
	if err != nil {
		return false, err
	}
	if containsHandle(g.arena[f].succ, t) {
		return false, nil
	}
	g.arena[f].succ = append(g.arena[f].succ, t)
	g.arena[t].pred = append(g.arena[t].pred, f)

	return true, nil
}

// RemoveEdge deletes from→to from both adjacency sides, preserving the
// relative order of the remaining entries. Complexity: O(deg(from)+deg(to)).
func (g *AdjacencyList[K]) RemoveEdge(from, to K) (bool, error) {
	f, t, err := g.handles(from, to)
	if err != nil {
		return false, err
	}
	if !containsHandle(g.arena[f].succ, t) {
		return false, nil
	}
	g.arena[f].succ = spliceHandle(g.arena[f].succ, t)
	g.arena[t].pred = spliceHandle(g.arena[t].pred, f)

	return true, nil
}

// HasEdge reports presence of from→to. Complexity: O(out-degree(from)).
func (g *AdjacencyList[K]) HasEdge(from, to K) (bool, error) {
	f, t, err := g.handles(from, to)
	if err != nil {
		return false, err
	}

	return containsHandle(g.arena[f].succ, t), nil
}

// OutDegree returns len(succ) for key. Complexity: O(1).
func (g *AdjacencyList[K]) OutDegree(key K) (int, error) {
	h, ok := g.index[key]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.arena[h].succ), nil
}

// InDegree returns len(pred) for key. Complexity: O(1).
func (g *AdjacencyList[K]) InDegree(key K) (int, error) {
	h, ok := g.index[key]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.arena[h].pred), nil
}

// KeySet returns a fresh set holding every vertex key. Complexity: O(V).
func (g *AdjacencyList[K]) KeySet() map[K]struct{} {
	set := make(map[K]struct{}, len(g.arena))
	for i := range g.arena {
		set[g.arena[i].key] = struct{}{}
	}

	return set
}

// SuccessorSet returns the set of keys directly reachable from key.
// Complexity: O(out-degree(key)).
func (g *AdjacencyList[K]) SuccessorSet(key K) (map[K]struct{}, error) {
	h, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.keysOf(g.arena[h].succ), nil
}

// PredecessorSet returns the set of keys with an edge into key.
// Complexity: O(in-degree(key)).
func (g *AdjacencyList[K]) PredecessorSet(key K) (map[K]struct{}, error) {
	h, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.keysOf(g.arena[h].pred), nil
}

// SuccessorIterator returns a snapshot-bound iterator over the successors
// of key, in insertion order. The iterator captures the adjacency slice
// header at creation and walks it by position, so later mutation of the
// graph cannot push it out of bounds.
func (g *AdjacencyList[K]) SuccessorIterator(key K) (Iterator[K], error) {
	h, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return &listIterator[K]{arena: g.arena, adj: g.arena[h].succ}, nil
}

// PredecessorIterator is the predecessor-side counterpart of
// SuccessorIterator, with identical snapshot semantics.
func (g *AdjacencyList[K]) PredecessorIterator(key K) (Iterator[K], error) {
	h, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return &listIterator[K]{arena: g.arena, adj: g.arena[h].pred}, nil
}

// keysOf translates a handle slice into a key set.
func (g *AdjacencyList[K]) keysOf(handles []int) map[K]struct{} {
	set := make(map[K]struct{}, len(handles))
	for _, h := range handles {
		set[g.arena[h].key] = struct{}{}
	}

	return set
}

// containsHandle reports whether h occurs in adj. Linear by design:
// adjacency slices are ordered sequences, not hash sets, and duplicate
// detection is required to cost no more than the degree.
func containsHandle(adj []int, h int) bool {
	for _, a := range adj {
		if a == h {
			return true
		}
	}

	return false
}

// spliceHandle removes the first occurrence of h from adj, keeping the
// order of the remaining handles.
func spliceHandle(adj []int, h int) []int {
	for i, a := range adj {
		if a == h {
			return append(adj[:i], adj[i+1:]...)
		}
	}

	return adj
}

// listIterator walks a captured adjacency slice by position. The slice
// header is the snapshot: appends to the live adjacency may reallocate
// and are never observed; removals shrink only the live slice, so the
// iterator can at worst yield stale handles, never invalid ones.
type listIterator[K comparable] struct {
	arena []listVertex[K]
	adj   []int
	pos   int
}

// HasNext reports whether positions remain in the snapshot.
func (it *listIterator[K]) HasNext() bool { return it.pos < len(it.adj) }

// Next yields the key at the current position or ErrIteratorExhausted.
func (it *listIterator[K]) Next() (K, error) {
	if it.pos >= len(it.adj) {
		var zero K
		return zero, ErrIteratorExhausted
	}
	k := it.arena[it.adj[it.pos]].key
	it.pos++

	return k, nil
}
