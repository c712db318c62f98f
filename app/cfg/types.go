package cfg

type Cfg struct {
	// Input locations
	CatalogFile string
	LocalesDir  string

	// Translation audit
	OutputIssues bool
	OutputFile   string
	CheckExtra   bool

	// Application metadata
	Debug   bool
	Version string
}
