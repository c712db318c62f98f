package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input locations
	CatalogFile string `long:"catalog-file" env:"CATALOG_FILE" default:"feeds.yml" description:"Feed catalog file to normalize"`
	LocalesDir  string `long:"locales-dir" env:"LOCALES_DIR" default:"locales" description:"Directory containing per-locale JSON translation files"`

	// Translation audit
	OutputIssues bool   `long:"output-issues" description:"Run the translation audit after normalizing and emit an issue report"`
	OutputFile   string `long:"output-file" description:"Write the issue report to this file instead of standard output"`
	CheckExtra   bool   `long:"check-extra" description:"Also flag locale categories that are not present in the catalog"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		CatalogFile:  raw.CatalogFile,
		LocalesDir:   raw.LocalesDir,
		OutputIssues: raw.OutputIssues,
		OutputFile:   raw.OutputFile,
		CheckExtra:   raw.CheckExtra,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
