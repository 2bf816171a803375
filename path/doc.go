// Package path provides unweighted shortest-path search over any
// core.Graph backend, plus a parallel longest-shortest-path estimator.
//
// Key features:
//   - Shortest(g, start, end): breadth-first search returning one
//     minimum-edge-count path, or nil when no path exists
//   - LongestShortest(g, source, opts...): runs Shortest from source to
//     every vertex on a bounded worker pool and reduces to the longest
//     result — a per-source eccentricity path
//
// Shortest enumerates growing path sequences in FIFO order with a global
// visited mark per vertex, so the first path to reach end is shortest in
// edge count. When several shortest paths exist, which one is returned
// depends on successor-set iteration order and is not stable across
// backends.
//
// Options (LongestShortest only):
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithWorkers(n)     bounds the worker pool; 0 means GOMAXPROCS.
//
// Complexity:
//
//   - Shortest:        O(V + E) time, O(V) extra memory (paths share no
//     storage, so worst-case path copies add O(V²) in pathological graphs).
//   - LongestShortest: V independent Shortest runs divided across workers.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrOptionViolation      if an invalid Option is supplied.
//   - core.ErrVertexNotFound  if an endpoint is outside the key space.
//   - context.Canceled        if ctx is done (LongestShortest).
//
// Both functions only read the graph; running them concurrently with
// mutation requires external synchronization.
package path
