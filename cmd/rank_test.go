package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/papapumpkin/pulsar/internal/rank"
)

func TestPrintRanks_SortedFixedPrecision(t *testing.T) {
	t.Parallel()
	dist := rank.Distribution{
		"3.html": 0.35,
		"1.html": 0.2199,
		"2.html": 0.43012,
	}

	var sb strings.Builder
	printRanks(&sb, dist, 4)

	want := "  1.html: 0.2199\n" +
		"  2.html: 0.4301\n" +
		"  3.html: 0.3500\n"
	if sb.String() != want {
		t.Errorf("printRanks output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestLoadCorpus_ManifestAndDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	manifest := filepath.Join(dir, "corpus.toml")
	if err := os.WriteFile(manifest, []byte("[pages]\n\"1\" = [\"2\"]\n\"2\" = []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := loadCorpus(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Pages(), []string{"1", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("manifest Pages() = %v, want %v", got, want)
	}

	htmlDir := filepath.Join(dir, "corpus")
	if err := os.Mkdir(htmlDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(htmlDir, "a.html"), []byte(`<a href="b.html">b</a>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(htmlDir, "b.html"), []byte(`<a href="a.html">a</a>`), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err = loadCorpus(htmlDir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Pages(), []string{"a.html", "b.html"}; !reflect.DeepEqual(got, want) {
		t.Errorf("directory Pages() = %v, want %v", got, want)
	}
}

func TestLoadCorpus_EmptyCorpus(t *testing.T) {
	t.Parallel()
	if _, err := loadCorpus(t.TempDir()); err == nil {
		t.Error("loadCorpus() on an empty directory returned nil error")
	}
}
