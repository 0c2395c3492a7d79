// Package main is the entry point for the farflife application.
// This file contains the export subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"farflife/internal/config"
	"farflife/internal/engine"
	"farflife/internal/fsutil"
	"farflife/internal/reports"
	"farflife/internal/storage"
)

// exportHelpText is the help message for the export subcommand.
const exportHelpText = `farflife export - Generate a weekly review

USAGE:
    farflife export [OPTIONS]

OPTIONS:
    -f, --format FMT   Output format: markdown (default) or json
    -o, --output FILE  Write to file instead of stdout
    -h, --help         Show this help message

DESCRIPTION:
    Generates a review of the last 7 days: goal days, total XP,
    completion rate, streaks, and your most-completed quests.
    Reviews can be output as Markdown (human-readable) or JSON
    (machine-readable).

EXAMPLES:
    # This week's review in Markdown
    farflife export

    # JSON format
    farflife export --format json

    # Save to file
    farflife export --output review.md
`

// runExport handles the "farflife export" subcommand.
func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	formatFlag := fs.String("format", "markdown", "output format: markdown or json")
	fs.StringVar(formatFlag, "f", "markdown", "output format (shorthand)")

	outputFlag := fs.String("output", "", "write to file instead of stdout")
	fs.StringVar(outputFlag, "o", "", "write to file (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, exportHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(exportHelpText)
		os.Exit(0)
	}

	// Validate format
	format := *formatFlag
	if format != "markdown" && format != "json" && format != "md" {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q. Use 'markdown' or 'json'.\n", format)
		os.Exit(1)
	}
	if format == "md" {
		format = "markdown"
	}

	// Load config, storage, and the progress engine
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	svc, err := engine.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress data: %v\n", err)
		os.Exit(1)
	}

	gen := reports.NewGenerator(svc)
	review := gen.GenerateWeekly()

	var output string
	if format == "json" {
		data, err := reports.FormatWeeklyJSON(review)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
			os.Exit(1)
		}
		output = string(data)
	} else {
		output = reports.FormatWeeklyMarkdown(review)
	}

	// Write output
	if *outputFlag != "" {
		if err := os.MkdirAll(filepath.Dir(*outputFlag), 0700); err != nil && filepath.Dir(*outputFlag) != "." {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		if err := fsutil.WriteFileAtomic(*outputFlag, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Review written to %s\n", *outputFlag)
	} else {
		fmt.Print(output)
	}
}
