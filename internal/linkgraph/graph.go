// Package linkgraph provides the directed link graph consumed by the rank
// estimators. Pages are identified by opaque string keys; each page carries
// a set of outbound links to other pages in the same graph.
package linkgraph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicatePage is returned when adding a page that already exists.
var ErrDuplicatePage = errors.New("duplicate page")

// ErrPageNotFound is returned when an operation references a non-existent page.
var ErrPageNotFound = errors.New("page not found")

// ErrSelfLink is returned when a link would point a page at itself.
var ErrSelfLink = errors.New("self-referencing link")

// Graph is a directed graph of pages and their outbound links. Build it with
// AddPage and AddLink, then treat it as read-only: the rank estimators never
// mutate a graph they are handed.
//
// A page with an empty link set is a sink. Links always stay inside the
// graph: AddLink rejects targets that were never added as pages, so a loader
// must strip dangling links before building.
type Graph struct {
	// links maps page ID → set of outbound link targets.
	links map[string]map[string]bool
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		links: make(map[string]map[string]bool),
	}
}

// AddPage adds a page with the given ID. Returns ErrDuplicatePage if a page
// with that ID already exists.
func (g *Graph) AddPage(id string) error {
	if _, exists := g.links[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePage, id)
	}
	g.links[id] = make(map[string]bool)
	return nil
}

// AddLink adds an outbound link from one page to another. Both pages must
// already exist. Returns an error if either page is missing or the link
// would be a self-loop. Adding an existing link is a no-op.
func (g *Graph) AddLink(from, to string) error {
	if from == to {
		return fmt.Errorf("%w: %s", ErrSelfLink, from)
	}
	if _, ok := g.links[from]; !ok {
		return fmt.Errorf("%w: %s", ErrPageNotFound, from)
	}
	if _, ok := g.links[to]; !ok {
		return fmt.Errorf("%w: %s", ErrPageNotFound, to)
	}
	g.links[from][to] = true
	return nil
}

// HasPage reports whether the graph contains a page with the given ID.
func (g *Graph) HasPage(id string) bool {
	_, ok := g.links[id]
	return ok
}

// HasLink reports whether from links to to.
func (g *Graph) HasLink(from, to string) bool {
	return g.links[from][to]
}

// Pages returns all page IDs in the graph, sorted alphabetically.
func (g *Graph) Pages() []string {
	ids := make([]string, 0, len(g.links))
	for id := range g.links {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Links returns the outbound link targets of the given page, sorted
// alphabetically. Returns nil if the page does not exist or is a sink.
func (g *Graph) Links(id string) []string {
	set, ok := g.links[id]
	if !ok || len(set) == 0 {
		return nil
	}
	targets := make([]string, 0, len(set))
	for to := range set {
		targets = append(targets, to)
	}
	sort.Strings(targets)
	return targets
}

// OutDegree returns the number of outbound links of the given page.
// A sink page (and a missing page) has out-degree zero.
func (g *Graph) OutDegree(id string) int {
	return len(g.links[id])
}

// Len returns the number of pages in the graph.
func (g *Graph) Len() int {
	return len(g.links)
}
