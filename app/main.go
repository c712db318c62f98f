package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/feedgrid/feedtidy/app/audit"
	"github.com/feedgrid/feedtidy/app/catalog"
	"github.com/feedgrid/feedtidy/app/cfg"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Optional .env file; env-tagged flags pick the values up.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return 0
	}

	setupLogger(appCfg.Debug)
	slog.Debug("Starting feedtidy", "version", appCfg.Version)

	cat, err := catalog.Load(appCfg.CatalogFile)
	if err != nil {
		slog.Error("Failed to load feed catalog", "file", appCfg.CatalogFile, "error", err)
		return 1
	}
	if cat == nil {
		slog.Info("Catalog file does not exist, skipping", "file", appCfg.CatalogFile)
		return 0
	}
	slog.Info("Feed catalog loaded", "file", appCfg.CatalogFile, "categories", len(cat.Feeds))

	result := cat.Normalize()
	for _, cr := range result.PerCategory {
		slog.Info("Removed duplicates", "category", cr.Category, "count", len(cr.Duplicates))
		for _, dup := range cr.Duplicates {
			slog.Info("Duplicate entry", "category", cr.Category, "feed", dup)
		}
	}

	written, err := cat.Save(appCfg.CatalogFile)
	if err != nil {
		slog.Error("Failed to write feed catalog", "file", appCfg.CatalogFile, "error", err)
		return 1
	}
	if written {
		slog.Info("Catalog sorted", "categories", result.Categories, "duplicates_removed", result.TotalDuplicates)
	} else {
		slog.Info("No changes, catalog already sorted")
	}

	if appCfg.OutputIssues {
		auditor := audit.NewAuditor(appCfg.LocalesDir, appCfg.CheckExtra)
		report, err := auditor.Run(cat.Categories())
		if err != nil {
			slog.Error("Translation audit failed", "error", err)
			return 1
		}

		if appCfg.OutputFile != "" {
			if err := report.Save(appCfg.OutputFile); err != nil {
				slog.Error("Failed to write issue report", "file", appCfg.OutputFile, "error", err)
				return 1
			}
			slog.Info("Issue report written", "file", appCfg.OutputFile, "total_issues", report.Summary.TotalIssues)
		} else {
			if err := report.Write(os.Stdout); err != nil {
				slog.Error("Failed to write issue report", "error", err)
				return 1
			}
		}
	}

	return 0
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
