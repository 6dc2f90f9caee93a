package rank

import (
	"fmt"
	"math/rand/v2"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// Sample estimates PageRank by random walk: starting from a uniformly random
// page, it takes n steps driven by the transition model and reports each
// page's visitation frequency. Precision improves as n grows; results vary
// between runs unless a seeded rng is supplied.
//
// rng is the walk's entropy source. Passing nil uses an auto-seeded source;
// pass rand.New(rand.NewPCG(seed, seed)) for a reproducible walk.
func Sample(g *linkgraph.Graph, damping float64, n int, rng *rand.Rand) (Distribution, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: empty graph", ErrInvalidInput)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count %d must be positive", ErrInvalidInput, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	pages := g.Pages()
	counts := make(map[string]int, len(pages))
	current := pages[rng.IntN(len(pages))]

	for i := 0; i < n; i++ {
		counts[current]++
		dist, err := Transition(g, current, damping)
		if err != nil {
			return nil, err
		}
		current = draw(pages, dist, rng)
	}

	result := make(Distribution, len(pages))
	for _, p := range pages {
		result[p] = float64(counts[p]) / float64(n)
	}
	return result, nil
}

// draw selects a page from dist by inverse-transform sampling. Pages are
// walked in sorted order so a seeded rng yields a deterministic walk.
func draw(pages []string, dist Distribution, rng *rand.Rand) string {
	r := rng.Float64()
	var cum float64
	for _, p := range pages {
		cum += dist[p]
		if r < cum {
			return p
		}
	}
	// Float drift can leave r just above the final cumulative sum.
	return pages[len(pages)-1]
}
