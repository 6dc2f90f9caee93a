package rank

import (
	"errors"
	"math"
	"testing"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// --- Test fixtures ---

// buildTriangle creates the three-page corpus
//
//	1 → 2, 1 → 3
//	2 → 3
//	3 → 2
func buildTriangle(t *testing.T) *linkgraph.Graph {
	t.Helper()
	g := linkgraph.New()
	for _, id := range []string{"1", "2", "3"} {
		if err := g.AddPage(id); err != nil {
			t.Fatal(err)
		}
	}
	for _, l := range [][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"3", "2"}} {
		if err := g.AddLink(l[0], l[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// buildWithSink creates a → b where b has no outbound links.
func buildWithSink(t *testing.T) *linkgraph.Graph {
	t.Helper()
	g := linkgraph.New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddPage(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddLink("a", "b"); err != nil {
		t.Fatal(err)
	}
	return g
}

// buildSinglePage creates a one-page corpus with no links.
func buildSinglePage(t *testing.T) *linkgraph.Graph {
	t.Helper()
	g := linkgraph.New()
	if err := g.AddPage("only"); err != nil {
		t.Fatal(err)
	}
	return g
}

const floatTol = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

// --- Transition tests ---

func TestTransition_Values(t *testing.T) {
	t.Parallel()
	g := buildTriangle(t)

	dist, err := Transition(g, "1", 0.85)
	if err != nil {
		t.Fatal(err)
	}

	// Page 1 links to 2 and 3: base (1-0.85)/3 = 0.05 for everyone,
	// plus 0.85/2 = 0.425 for each link target.
	want := map[string]float64{"1": 0.05, "2": 0.475, "3": 0.475}
	for p, w := range want {
		if !approxEqual(dist[p], w) {
			t.Errorf("dist[%s] = %f, want %f", p, dist[p], w)
		}
	}
}

func TestTransition_CoversEveryPage(t *testing.T) {
	t.Parallel()
	g := buildTriangle(t)

	for _, page := range g.Pages() {
		dist, err := Transition(g, page, 0.85)
		if err != nil {
			t.Fatal(err)
		}
		if len(dist) != g.Len() {
			t.Errorf("transition from %s has %d entries, want %d", page, len(dist), g.Len())
		}
		for p, v := range dist {
			if v < 0 {
				t.Errorf("dist[%s] = %f, want >= 0", p, v)
			}
		}
		if !approxEqual(dist.Sum(), 1.0) {
			t.Errorf("transition from %s sums to %f, want ~1.0", page, dist.Sum())
		}
	}
}

func TestTransition_SinkLinksEverywhere(t *testing.T) {
	t.Parallel()
	sink := buildWithSink(t)

	dist, err := Transition(sink, "b", 0.85)
	if err != nil {
		t.Fatal(err)
	}

	// Sink behaves as if linking to all pages: every page gets
	// (1-d)/N + d/N = 1/N.
	want := 1.0 / float64(sink.Len())
	for _, p := range sink.Pages() {
		if !approxEqual(dist[p], want) {
			t.Errorf("dist[%s] = %f, want %f", p, dist[p], want)
		}
	}
}

func TestTransition_DampingZeroIsUniform(t *testing.T) {
	t.Parallel()
	g := buildTriangle(t)

	dist, err := Transition(g, "1", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / 3.0
	for _, p := range g.Pages() {
		if !approxEqual(dist[p], want) {
			t.Errorf("dist[%s] = %f, want %f", p, dist[p], want)
		}
	}
}

func TestTransition_InvalidInput(t *testing.T) {
	t.Parallel()
	g := buildTriangle(t)

	tests := []struct {
		name    string
		graph   *linkgraph.Graph
		page    string
		damping float64
	}{
		{"empty graph", linkgraph.New(), "1", 0.85},
		{"unknown page", g, "missing", 0.85},
		{"damping below range", g, "1", -0.1},
		{"damping above range", g, "1", 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Transition(tt.graph, tt.page, tt.damping)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Transition() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
