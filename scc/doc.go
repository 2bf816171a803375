// Package scc extracts the strongly connected component of a vertex in
// any core.Graph backend.
//
// The algorithm is two independent reachability passes: a stack-based
// forward traversal over successor edges collecting set F, and a backward
// traversal over predecessor edges (with fresh visited marks) collecting
// set B. A vertex shares key's component iff it is reachable both from
// key and to key, so the result is exactly F ∩ B.
//
// Traversal order within a pass is unspecified — only the final reachable
// sets matter, never the order in which they were discovered.
//
// Complexity:
//
//   - Time:   O(V + E) per pass (two passes total).
//   - Memory: O(V) for the visited marks, stacks, and result sets.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - core.ErrVertexNotFound  if key is outside the graph's key space.
package scc
