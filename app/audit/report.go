package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// NewReport wraps the collected issues into a Report with summary counts
// and a UTC timestamp.
func NewReport(issues []Issue) *Report {
	byType := make(map[string]int)
	for _, issue := range issues {
		byType[issue.Type]++
	}

	return &Report{
		Type:   "feeds",
		Issues: issues,
		Summary: Summary{
			TotalIssues: len(issues),
			ByType:      byType,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Write emits the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode issue report: %w", err)
	}
	return nil
}

// Save writes the report to a file.
func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create issue report file: %w", err)
	}
	defer f.Close()

	if err := r.Write(f); err != nil {
		return err
	}
	return f.Close()
}
