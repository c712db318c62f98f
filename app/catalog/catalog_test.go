package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	path := writeCatalog(t, `
feeds:
  tech:
    - "https://a.example.com/rss"
    - "https://b.example.com/rss"
  news:
    - "https://news.example.com/rss"
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cat == nil {
		t.Fatal("Expected catalog, got nil")
	}

	if len(cat.Feeds) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(cat.Feeds))
	}
	if len(cat.Feeds["tech"]) != 2 {
		t.Errorf("Expected 2 tech feeds, got %d", len(cat.Feeds["tech"]))
	}
	if cat.Feeds["news"][0] != "https://news.example.com/rss" {
		t.Errorf("Unexpected news feed: %s", cat.Feeds["news"][0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got: %v", err)
	}
	if cat != nil {
		t.Error("Expected nil catalog for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeCatalog(t, "feeds: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadWithoutFeedsMapping(t *testing.T) {
	path := writeCatalog(t, "channels:\n  tech:\n    - a.com\n")

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error when 'feeds' mapping is absent")
	}
}

func TestLoadEmptyFeedsMapping(t *testing.T) {
	path := writeCatalog(t, "feeds: {}\n")

	cat, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cat == nil || len(cat.Feeds) != 0 {
		t.Error("Expected empty catalog for empty feeds mapping")
	}
}

func TestCategoriesSorted(t *testing.T) {
	path := writeCatalog(t, `
feeds:
  tech:
    - "a.com"
  business:
    - "b.com"
  news:
    - "c.com"
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	categories := cat.Categories()
	expected := []string{"business", "news", "tech"}
	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(categories))
	}
	for i, category := range expected {
		if categories[i] != category {
			t.Errorf("Expected category %d to be '%s', got '%s'", i, category, categories[i])
		}
	}
}
