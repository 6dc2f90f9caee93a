// Package corpus loads link graphs for the rank estimators: from a directory
// of HTML pages (Crawl), or from a declarative TOML manifest (LoadManifest).
// Both loaders enforce the graph invariants the estimators rely on — no self
// links and no links outside the corpus.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// hrefPattern extracts anchor href targets from raw HTML.
var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl parses a directory of .html files and builds a link graph keyed by
// filename. Links to the page itself and links to files outside the corpus
// are dropped before the graph is built.
func Crawl(dir string) (*linkgraph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	raw := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		var targets []string
		for _, m := range hrefPattern.FindAllStringSubmatch(string(data), -1) {
			targets = append(targets, m[1])
		}
		raw[e.Name()] = targets
	}

	return build(raw)
}

// build constructs a Graph from a page → link-target listing, stripping
// self links, duplicate links, and targets not present as pages.
func build(raw map[string][]string) (*linkgraph.Graph, error) {
	g := linkgraph.New()
	for page := range raw {
		if err := g.AddPage(page); err != nil {
			return nil, err
		}
	}
	for page, targets := range raw {
		for _, to := range targets {
			if to == page || !g.HasPage(to) {
				continue
			}
			if err := g.AddLink(page, to); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
