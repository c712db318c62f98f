package catalog

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog is a feed catalog document: a mapping from category name to the
// feed URLs belonging to that category.
type Catalog struct {
	Feeds map[string][]string

	// source holds the file content as read, for change detection on Save.
	source []byte
}

type document struct {
	Feeds map[string][]string `yaml:"feeds"`
}

// Load reads and parses the catalog file. A missing file is not an error:
// Load returns (nil, nil) and the caller is expected to skip the run.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Feeds == nil {
		return nil, fmt.Errorf("no 'feeds' mapping found in %s", path)
	}

	return &Catalog{Feeds: doc.Feeds, source: data}, nil
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	return slices.Sorted(maps.Keys(c.Feeds))
}
