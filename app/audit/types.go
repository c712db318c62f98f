package audit

// Issue describes one inconsistency between the feed catalog and a locale
// file.
type Issue struct {
	Type     string `json:"type"`
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Issue types
const (
	TypeMissing       = "missing"
	TypeExtra         = "extra"
	TypeParseError    = "parse_error"
	TypeInvalidLocale = "invalid_locale"
)

// Issue severities
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

type Summary struct {
	TotalIssues int            `json:"totalIssues"`
	ByType      map[string]int `json:"byType"`
}

// Report is the JSON document emitted by the translation audit.
type Report struct {
	Type      string  `json:"type"`
	Issues    []Issue `json:"issues"`
	Summary   Summary `json:"summary"`
	Timestamp string  `json:"timestamp"`
}

// localeDocument is the subset of a locale file the auditor looks at. Only
// key presence matters, so values are left untyped.
type localeDocument struct {
	Categories map[string]any `json:"categories"`
}
