package core

// AdjacencyMatrix realizes Graph[K] with a dense n×n boolean matrix:
// cells[i][j] == true iff the edge (keys[i], keys[j]) exists.
//
// Keys are mapped once, at construction, to dense indices 0..n-1 in
// first-occurrence order of the constructor input; the mapping and its
// inverse never change afterwards, so key→index translation stays O(1)
// for the life of the instance. All mutation targets the matrix only.
//
// Trade-off versus AdjacencyList: O(V²) memory and construction buy O(1)
// AddEdge/RemoveEdge/HasEdge; degree and adjacency-set queries scan a
// full row or column, O(V) each.
type AdjacencyMatrix[K comparable] struct {
	index map[K]int // key → row/col index, fixed at construction
	keys  []K       // index → key, fixed at construction
	cells [][]bool  // cells[i][j]: edge (keys[i], keys[j]) present
}

// NewAdjacencyMatrix builds a matrix backend over the given vertex keys
// with zero edges. Index assignment follows first-occurrence order of the
// input, so the same input always yields the same layout. Duplicate keys
// collapse to one vertex. Complexity: O(V²).
func NewAdjacencyMatrix[K comparable](keys ...K) *AdjacencyMatrix[K] {
	g := &AdjacencyMatrix[K]{
		index: make(map[K]int, len(keys)),
		keys:  make([]K, 0, len(keys)),
	}
	for _, k := range keys {
		if _, ok := g.index[k]; ok {
			continue
		}
		g.index[k] = len(g.keys)
		g.keys = append(g.keys, k)
	}
	n := len(g.keys)
	g.cells = make([][]bool, n)
	for i := range g.cells {
		g.cells[i] = make([]bool, n)
	}

	return g
}

// indices resolves two keys to matrix indices, or ErrVertexNotFound if
// either lies outside the key space.
func (g *AdjacencyMatrix[K]) indices(from, to K) (int, int, error) {
	i, ok := g.index[from]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return i, j, nil
}

// Size returns the vertex count. Complexity: O(1).
func (g *AdjacencyMatrix[K]) Size() int { return len(g.keys) }

// NumEdges counts set cells across the whole matrix. Complexity: O(V²).
func (g *AdjacencyMatrix[K]) NumEdges() int {
	var total int
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] {
				total++
			}
		}
	}

	return total
}

// HasVertex reports whether key is in the fixed key space. Complexity: O(1).
func (g *AdjacencyMatrix[K]) HasVertex(key K) bool {
	_, ok := g.index[key]
	return ok
}

// AddEdge sets one cell. Complexity: O(1).
func (g *AdjacencyMatrix[K]) AddEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}
	if g.cells[i][j] {
		return false, nil
	}
	g.cells[i][j] = true

	return true, nil
}

// RemoveEdge clears one cell. Complexity: O(1).
func (g *AdjacencyMatrix[K]) RemoveEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}
	if !g.cells[i][j] {
		return false, nil
	}
	g.cells[i][j] = false

	return true, nil
}

// HasEdge reads one cell. Complexity: O(1).
func (g *AdjacencyMatrix[K]) HasEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}

	return g.cells[i][j], nil
}

// OutDegree counts set cells in key's row. Complexity: O(V).
func (g *AdjacencyMatrix[K]) OutDegree(key K) (int, error) {
	i, ok := g.index[key]
	if !ok {
		return 0, ErrVertexNotFound
	}
	var deg int
	for j := range g.cells[i] {
		if g.cells[i][j] {
			deg++
		}
	}

	return deg, nil
}

// InDegree counts set cells in key's column. Complexity: O(V).
func (g *AdjacencyMatrix[K]) InDegree(key K) (int, error) {
	j, ok := g.index[key]
	if !ok {
		return 0, ErrVertexNotFound
	}
	var deg int
	for i := range g.cells {
		if g.cells[i][j] {
			deg++
		}
	}

	return deg, nil
}

// KeySet returns a fresh set holding every vertex key. Complexity: O(V).
func (g *AdjacencyMatrix[K]) KeySet() map[K]struct{} {
	set := make(map[K]struct{}, len(g.keys))
	for _, k := range g.keys {
		set[k] = struct{}{}
	}

	return set
}

// SuccessorSet collects the keys of set cells in key's row. Complexity: O(V).
func (g *AdjacencyMatrix[K]) SuccessorSet(key K) (map[K]struct{}, error) {
	i, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}
	set := make(map[K]struct{})
	for j := range g.cells[i] {
		if g.cells[i][j] {
			set[g.keys[j]] = struct{}{}
		}
	}

	return set, nil
}

// PredecessorSet collects the keys of set cells in key's column. Complexity: O(V).
func (g *AdjacencyMatrix[K]) PredecessorSet(key K) (map[K]struct{}, error) {
	j, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}
	set := make(map[K]struct{})
	for i := range g.cells {
		if g.cells[i][j] {
			set[g.keys[i]] = struct{}{}
		}
	}

	return set, nil
}

// SuccessorIterator returns a live iterator scanning key's matrix row in
// index order. Unlike the list backend's snapshot iterator this reads the
// matrix directly: HasNext peeks ahead from the cursor without consuming,
// and Next advances to the following set cell or ErrIteratorExhausted.
// An edge mutation between HasNext and Next may therefore change the
// outcome; the cursor stays within [0, n) regardless.
func (g *AdjacencyMatrix[K]) SuccessorIterator(key K) (Iterator[K], error) {
	i, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return &matrixIterator[K]{g: g, fixed: i, row: true, cursor: -1}, nil
}

// PredecessorIterator is the column-scanning counterpart of
// SuccessorIterator, with identical live-scan semantics.
func (g *AdjacencyMatrix[K]) PredecessorIterator(key K) (Iterator[K], error) {
	j, ok := g.index[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return &matrixIterator[K]{g: g, fixed: j, row: false, cursor: -1}, nil
}

// matrixIterator scans one row (successors) or one column (predecessors)
// of the live matrix, forward from the last found index.
type matrixIterator[K comparable] struct {
	g      *AdjacencyMatrix[K]
	fixed  int  // fixed row (row==true) or column (row==false) index
	row    bool // scan orientation
	cursor int  // index of the last yielded cell, -1 before the first
}

// cell reads the scanned dimension at position i.
func (it *matrixIterator[K]) cell(i int) bool {
	if it.row {
		return it.g.cells[it.fixed][i]
	}

	return it.g.cells[i][it.fixed]
}

// HasNext peeks forward for a set cell without moving the cursor.
func (it *matrixIterator[K]) HasNext() bool {
	for i := it.cursor + 1; i < len(it.g.keys); i++ {
		if it.cell(i) {
			return true
		}
	}

	return false
}

// Next advances to the next set cell and yields its key, or
// ErrIteratorExhausted when no set cell remains.
func (it *matrixIterator[K]) Next() (K, error) {
	for i := it.cursor + 1; i < len(it.g.keys); i++ {
		if it.cell(i) {
			it.cursor = i
			return it.g.keys[i], nil
		}
	}
	var zero K

	return zero, ErrIteratorExhausted
}
