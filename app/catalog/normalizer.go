package catalog

import (
	"slices"
)

// CategoryDuplicates lists the duplicate entries removed from one category,
// in the order they were encountered in the input.
type CategoryDuplicates struct {
	Category   string
	Duplicates []string
}

// Result summarizes one normalization pass.
type Result struct {
	Categories      int
	TotalDuplicates int
	// PerCategory holds one entry per category that had duplicates,
	// in sorted category order.
	PerCategory []CategoryDuplicates
}

// Normalize deduplicates and sorts every category's entries in place.
// Duplicates are detected by exact string match; the first occurrence is
// kept and every repeat is recorded for reporting.
func (c *Catalog) Normalize() Result {
	result := Result{Categories: len(c.Feeds)}

	for _, category := range c.Categories() {
		entries := c.Feeds[category]

		seen := make(map[string]struct{}, len(entries))
		unique := make([]string, 0, len(entries))
		var duplicates []string

		for _, feed := range entries {
			if _, ok := seen[feed]; ok {
				duplicates = append(duplicates, feed)
				continue
			}
			seen[feed] = struct{}{}
			unique = append(unique, feed)
		}

		slices.Sort(unique)
		c.Feeds[category] = unique

		if len(duplicates) > 0 {
			result.PerCategory = append(result.PerCategory, CategoryDuplicates{
				Category:   category,
				Duplicates: duplicates,
			})
			result.TotalDuplicates += len(duplicates)
		}
	}

	return result
}
