package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Auditor checks locale translation files against the catalog's category
// set. It never modifies the locale files.
type Auditor struct {
	localesDir string
	checkExtra bool
}

func NewAuditor(localesDir string, checkExtra bool) *Auditor {
	return &Auditor{localesDir: localesDir, checkExtra: checkExtra}
}

// Run audits every locale file against the given categories and returns
// the collected report. Locale files and categories are both processed in
// sorted order so repeated runs produce identical reports. A missing
// locales directory yields an empty report.
func (a *Auditor) Run(categories []string) (*Report, error) {
	files, err := filepath.Glob(filepath.Join(a.localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	slices.Sort(files)

	catSet := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		catSet[category] = struct{}{}
	}

	issues := []Issue{}
	for _, file := range files {
		issues = append(issues, a.auditLocale(file, categories, catSet)...)
	}

	slog.Debug("Translation audit finished", "locales", len(files), "issues", len(issues))

	return NewReport(issues), nil
}

func (a *Auditor) auditLocale(path string, categories []string, catSet map[string]struct{}) []Issue {
	var issues []Issue

	locale := strings.TrimSuffix(filepath.Base(path), ".json")
	if _, err := language.Parse(locale); err != nil {
		issues = append(issues, Issue{
			Type:     TypeInvalidLocale,
			File:     path,
			Message:  fmt.Sprintf("Locale file name '%s' is not a valid BCP 47 language tag", locale),
			Severity: SeverityWarning,
		})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		issues = append(issues, Issue{
			Type:     TypeParseError,
			File:     path,
			Message:  fmt.Sprintf("Failed to read locale file: %v", err),
			Severity: SeverityError,
		})
		return issues
	}

	var doc localeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Skipping malformed locale file", "file", path, "error", err)
		issues = append(issues, Issue{
			Type:     TypeParseError,
			File:     path,
			Message:  fmt.Sprintf("Failed to parse locale JSON: %v", err),
			Severity: SeverityError,
		})
		return issues
	}

	for _, category := range categories {
		if _, ok := doc.Categories[category]; !ok {
			issues = append(issues, Issue{
				Type:     TypeMissing,
				File:     path,
				Message:  fmt.Sprintf("Missing translation for core category '%s'", category),
				Severity: SeverityWarning,
			})
		}
	}

	if a.checkExtra {
		for _, key := range slices.Sorted(maps.Keys(doc.Categories)) {
			if _, ok := catSet[key]; !ok {
				issues = append(issues, Issue{
					Type:     TypeExtra,
					File:     path,
					Message:  fmt.Sprintf("Translation for unknown category '%s'", key),
					Severity: SeverityWarning,
				})
			}
		}
	}

	return issues
}
