package rank

import (
	"fmt"
	"math"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// IterateOptions configures the iterative PageRank estimator.
type IterateOptions struct {
	Damping       float64 // damping factor; typically 0.85
	Tolerance     float64 // convergence threshold on per-page rank change
	MaxIterations int     // upper bound on relaxation passes
}

// DefaultIterateOptions returns production-ready defaults:
// damping 0.85, tolerance 0.001, max 200 iterations.
func DefaultIterateOptions() IterateOptions {
	return IterateOptions{
		Damping:       0.85,
		Tolerance:     0.001,
		MaxIterations: 200,
	}
}

// Iterate estimates PageRank with default option values for everything but
// damping and tolerance. See IterateWith.
func Iterate(g *linkgraph.Graph, damping, tolerance float64) (Distribution, error) {
	opts := DefaultIterateOptions()
	opts.Damping = damping
	opts.Tolerance = tolerance
	return IterateWith(g, opts)
}

// IterateWith solves the PageRank fixed-point equation by repeated
// relaxation. Every page starts at 1/N; each pass recomputes every rank
// from the previous pass's complete rank set, and the loop stops once no
// page moves by more than the tolerance.
//
// Sink pages (out-degree 0) contribute rank/N to every page rather than
// being excluded, so total probability mass is preserved. The returned
// values sum to 1.0 within floating-point drift; no re-normalization is
// applied. Deterministic given fixed input.
//
// Returns ErrNoConvergence if MaxIterations passes complete without
// settling, which should not happen for damping < 1.
func IterateWith(g *linkgraph.Graph, opts IterateOptions) (Distribution, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: empty graph", ErrInvalidInput)
	}
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, fmt.Errorf("%w: damping %v outside [0, 1]", ErrInvalidInput, opts.Damping)
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidInput, opts.Tolerance)
	}

	pages := g.Pages()
	ranks := make(Distribution, len(pages))
	initial := 1.0 / float64(len(pages))
	for _, p := range pages {
		ranks[p] = initial
	}

	backlinks := backlinkIndex(g, pages)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		next := relax(g, pages, backlinks, ranks, opts.Damping)

		maxDelta := 0.0
		for _, p := range pages {
			delta := math.Abs(next[p] - ranks[p])
			if delta > maxDelta {
				maxDelta = delta
			}
		}

		ranks = next
		if maxDelta <= opts.Tolerance {
			return ranks, nil
		}
	}

	return nil, fmt.Errorf("%w: %d iterations at tolerance %v",
		ErrNoConvergence, opts.MaxIterations, opts.Tolerance)
}

// relax performs one full relaxation pass, computing every page's next rank
// from the previous complete rank set.
func relax(g *linkgraph.Graph, pages []string, backlinks map[string][]string, ranks Distribution, damping float64) Distribution {
	n := float64(len(pages))
	base := (1 - damping) / n

	// Sink contribution is the same for every page: rank/N per sink.
	var sinkSum float64
	for _, p := range pages {
		if g.OutDegree(p) == 0 {
			sinkSum += ranks[p]
		}
	}
	sinkShare := sinkSum / n

	next := make(Distribution, len(pages))
	for _, p := range pages {
		sum := sinkShare
		for _, q := range backlinks[p] {
			sum += ranks[q] / float64(g.OutDegree(q))
		}
		next[p] = base + damping*sum
	}
	return next
}

// backlinkIndex inverts the graph once so each relaxation pass can sum over
// a page's in-links directly.
func backlinkIndex(g *linkgraph.Graph, pages []string) map[string][]string {
	backlinks := make(map[string][]string, len(pages))
	for _, q := range pages {
		for _, p := range g.Links(q) {
			backlinks[p] = append(backlinks[p], q)
		}
	}
	return backlinks
}
