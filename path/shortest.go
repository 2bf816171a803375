package path

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// searcher encapsulates mutable BFS state: the FIFO worklist of candidate
// paths, the global visited marks, and the best complete path so far.
type searcher[K comparable] struct {
	graph   core.Graph[K]
	end     K
	queue   [][]K
	visited map[K]struct{}
	best    []K
}

// Shortest returns one minimum-edge-count path from start to end as a key
// sequence beginning with start and ending with end, or nil (with a nil
// error) when no path exists. start == end yields the one-element path
// [start] without any traversal.
//
// The search enumerates growing path sequences breadth-first: each
// dequeued path is extended by one unvisited successor at a time, and a
// vertex is enqueued at most once globally, so the first extension that
// reaches end is shortest in edge count. Among equal-length paths the one
// returned depends on successor-set iteration order, which is unordered;
// callers must not rely on a particular tie-break across backends or runs.
//
// Returns ErrGraphNil for a nil graph and core.ErrVertexNotFound when
// either endpoint is outside g's key space.
func Shortest[K comparable](g core.Graph[K], start, end K) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, core.ErrVertexNotFound
	}
	if start == end {
		return []K{start}, nil
	}

	s := &searcher[K]{
		graph:   g,
		end:     end,
		queue:   [][]K{{start}},
		visited: map[K]struct{}{start: {}},
	}
	if err := s.drain(); err != nil {
		return nil, err
	}

	return s.best, nil
}

// drain processes the worklist until empty, skipping any candidate
// already longer than the best complete path found so far.
func (s *searcher[K]) drain() error {
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		// Every later candidate of this length or more can only tie or
		// lose; visited marking already guarantees the first hit is
		// shortest, so longer leftovers are dropped unexpanded.
		if s.best != nil && len(next) > len(s.best) {
			continue
		}
		if err := s.extend(next); err != nil {
			return err
		}
	}

	return nil
}

// extend grows next by each unvisited successor of its terminal key,
// marking the successor visited, enqueueing the extension, and recording
// it as best when it reaches the target with fewer keys than any
// previous hit.
func (s *searcher[K]) extend(next []K) error {
	last := next[len(next)-1]
	adj, err := s.graph.SuccessorSet(last)
	if err != nil {
		return fmt.Errorf("path: successors of %v: %w", last, err)
	}

	for w := range adj {
		if _, seen := s.visited[w]; seen {
			continue
		}
		s.visited[w] = struct{}{}

		// Fresh backing array per candidate: paths must not alias.
		ext := make([]K, 0, len(next)+1)
		ext = append(ext, next...)
		ext = append(ext, w)
		s.queue = append(s.queue, ext)

		if w == s.end && (s.best == nil || len(ext) < len(s.best)) {
			s.best = ext
		}
	}

	return nil
}
