// Package rank estimates the relative importance (PageRank) of pages in a
// directed link graph. Two independent estimators are provided: a stochastic
// random-walk sampler and a deterministic iterative fixed-point solver.
// Both consume an immutable linkgraph.Graph and return a fresh Distribution.
package rank

import (
	"fmt"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// Distribution maps page IDs to non-negative probabilities. Every page of
// the source graph appears as a key, and the values sum to 1.0 within
// floating-point tolerance.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

// Transition computes the probability distribution over which page a random
// surfer visits next, given the current page. With probability damping the
// surfer follows one of the current page's links uniformly; with probability
// 1-damping it jumps to a uniformly random page. A sink page (no outbound
// links) is treated as linking to every page in the graph, so rank is never
// trapped.
//
// Pure function of its inputs; the graph is never mutated.
func Transition(g *linkgraph.Graph, page string, damping float64) (Distribution, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: empty graph", ErrInvalidInput)
	}
	if !g.HasPage(page) {
		return nil, fmt.Errorf("%w: unknown page %q", ErrInvalidInput, page)
	}
	if damping < 0 || damping > 1 {
		return nil, fmt.Errorf("%w: damping %v outside [0, 1]", ErrInvalidInput, damping)
	}

	n := float64(g.Len())
	base := (1 - damping) / n

	dist := make(Distribution, g.Len())
	outDeg := g.OutDegree(page)
	if outDeg == 0 {
		// Sink: uniform over the whole graph.
		share := base + damping/n
		for _, p := range g.Pages() {
			dist[p] = share
		}
		return dist, nil
	}

	share := damping / float64(outDeg)
	for _, p := range g.Pages() {
		dist[p] = base
		if g.HasLink(page, p) {
			dist[p] += share
		}
	}
	return dist, nil
}
