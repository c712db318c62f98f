package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode serializes the catalog deterministically: categories in sorted
// order, one feed per line, two-space indent. The node tree is built
// explicitly so the emitted byte sequence is stable across runs, which the
// write-only-if-changed check in Save depends on.
func (c *Catalog) Encode() ([]byte, error) {
	feeds := &yaml.Node{Kind: yaml.MappingNode}

	for _, category := range c.Categories() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: category}
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, feed := range c.Feeds[category] {
			list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: feed})
		}
		feeds.Content = append(feeds.Content, key, list)
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "feeds"},
			feeds,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes the encoded catalog back to path, but only when the encoded
// form differs from the file content seen at load time. It reports whether
// a write happened.
func (c *Catalog) Save(path string) (bool, error) {
	encoded, err := c.Encode()
	if err != nil {
		return false, err
	}

	if bytes.Equal(encoded, c.source) {
		return false, nil
	}

	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return false, fmt.Errorf("failed to write catalog file: %w", err)
	}
	c.source = encoded

	return true, nil
}
