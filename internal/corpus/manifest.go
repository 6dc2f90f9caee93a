package corpus

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/pulsar/internal/linkgraph"
)

// ErrNoPages indicates a manifest declares no pages at all.
var ErrNoPages = errors.New("manifest declares no pages")

// manifest is the TOML shape of a declarative corpus:
//
//	[pages]
//	"1.html" = ["2.html", "3.html"]
//	"2.html" = ["3.html"]
//	"3.html" = ["2.html"]
type manifest struct {
	Pages map[string][]string `toml:"pages"`
}

// LoadManifest reads a TOML corpus manifest and builds a link graph from it.
// Self links and links to undeclared pages are stripped, same as Crawl.
func LoadManifest(path string) (*linkgraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(m.Pages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, path)
	}

	return build(m.Pages)
}
