package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		CatalogFile:  "feeds.yml",
		LocalesDir:   "locales",
		OutputIssues: true,
		OutputFile:   "report.json",
		CheckExtra:   true,
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.CatalogFile != "feeds.yml" {
		t.Errorf("Expected catalog file 'feeds.yml', got '%s'", cfg.CatalogFile)
	}
	if cfg.LocalesDir != "locales" {
		t.Errorf("Expected locales dir 'locales', got '%s'", cfg.LocalesDir)
	}
	if !cfg.OutputIssues {
		t.Error("Expected output issues to be enabled")
	}
	if cfg.OutputFile != "report.json" {
		t.Errorf("Expected output file 'report.json', got '%s'", cfg.OutputFile)
	}
	if !cfg.CheckExtra {
		t.Error("Expected check extra to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
