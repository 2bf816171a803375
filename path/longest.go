package path

import (
	"github.com/katalvlaran/digraph/core"
	"golang.org/x/sync/errgroup"
)

// LongestShortest estimates the longest shortest path out of source: it
// computes Shortest(g, source, target) for every vertex target on a
// bounded worker pool, then reduces single-threaded to the path with the
// most edges. The source vertex is a required explicit input — there is
// no implicit "best source" selection.
//
// Returns nil (with a nil error) when source reaches no other vertex.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for invalid
// options, core.ErrVertexNotFound when source is outside g's key space,
// and the context's error when cancelled.
//
// The graph is only read; callers must not mutate it for the duration of
// the call.
func LongestShortest[K comparable](g core.Graph[K], source K, opts ...Option) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, core.ErrVertexNotFound
	}

	targets := make([]K, 0, g.Size())
	for k := range g.KeySet() {
		targets = append(targets, k)
	}

	// Parallel map: one Shortest run per target, each writing only its
	// own result slot. No shared best, no race to reduce later.
	results := make([][]K, len(targets))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.poolSize())
	for i, target := range targets {
		i, target := i, target
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			p, err := Shortest(g, source, target)
			if err != nil {
				return err
			}
			results[i] = p

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Single-threaded reduction to the maximum-edge-count path.
	// One-element paths (source itself) and absent paths do not count.
	var longest []K
	for _, p := range results {
		if len(p) > 1 && len(p) > len(longest) {
			longest = p
		}
	}

	return longest, nil
}
