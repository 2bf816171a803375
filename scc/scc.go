package scc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("scc: graph is nil")

// SCC returns the strongly connected component containing key: every
// vertex reachable from key along successor edges and back to key along
// them as well. The result always contains key itself.
//
// Returns ErrGraphNil for a nil graph and core.ErrVertexNotFound when key
// is outside g's key space.
func SCC[K comparable](g core.Graph[K], key K) (map[K]struct{}, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(key) {
		return nil, core.ErrVertexNotFound
	}

	// Forward pass: everything reachable from key.
	forward, err := reachable(key, g.SuccessorSet)
	if err != nil {
		return nil, fmt.Errorf("scc: forward pass from %v: %w", key, err)
	}
	// Backward pass: everything that reaches key, found by walking
	// predecessor edges with fresh visited marks.
	backward, err := reachable(key, g.PredecessorSet)
	if err != nil {
		return nil, fmt.Errorf("scc: backward pass from %v: %w", key, err)
	}

	// The component is the exact intersection of the two reachable sets.
	component := make(map[K]struct{})
	for k := range forward {
		if _, ok := backward[k]; ok {
			component[k] = struct{}{}
		}
	}

	return component, nil
}

// reachable runs a stack-based traversal from start, expanding each
// vertex through adjacent, and returns the full set of vertices reached.
func reachable[K comparable](start K, adjacent func(K) (map[K]struct{}, error)) (map[K]struct{}, error) {
	reached := make(map[K]struct{})
	visited := make(map[K]struct{})
	stack := []K{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[v]; seen {
			continue
		}
		visited[v] = struct{}{}

		adj, err := adjacent(v)
		if err != nil {
			return nil, err
		}
		for w := range adj {
			if _, seen := visited[w]; !seen {
				stack = append(stack, w)
			}
		}
		reached[v] = struct{}{}
	}

	return reached, nil
}
