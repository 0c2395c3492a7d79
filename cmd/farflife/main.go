// Package main is the entry point for the farflife application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"farflife/internal/config"
	"farflife/internal/engine"
	"farflife/internal/notify"
	"farflife/internal/storage"
	"farflife/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `farflife - A daily habit garden for your terminal

USAGE:
    farflife [OPTIONS]
    farflife <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Generate a weekly review (Markdown)
    export -f json   Output the review as JSON

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    farflife is a terminal-based habit tracker built around a daily XP goal.
    Complete your daily essentials and quests to bank XP, keep your streak
    alive, and review your week at a glance.

FEATURES:
    • Essentials - Once-a-day habits that anchor your routine
    • Quests     - Repeatable activities worth XP every time
    • Streaks    - Consecutive goal days, tracked across restarts
    • Review     - 7-day week view with completion rate and top quests
    • Local Data - A single plain JSON file in ~/.farflife/

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2, 3      Jump to specific pane
        s            Set daily XP goal
        r            Reset today's progress
        R            Reset everything
        ?            Show help overlay
        q            Quit

    Essentials Pane:
        j/k, ↓/↑     Navigate
        a            Add essential
        d/Space      Complete for today
        e            Edit name/XP
        x            Delete essential
        g/G          Go to top/bottom

    Quests Pane:
        j/k, ↓/↑     Navigate
        a            Add quest
        d/Space      Complete (repeatable)
        e            Edit name/XP
        x            Delete quest

DATA STORAGE:
    All data is stored in ~/.farflife/farflife.json as plain JSON.
    Backups are kept under ~/.farflife/backups/.

CONFIGURATION:
    Optional config file: ~/.config/farflife/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    farflife

    # Create a backup
    farflife backup

    # Restore from a backup
    farflife restore --latest

    # Generate this week's review as JSON
    farflife export --format json

    # Show version
    farflife --version

    # Show this help
    farflife --help
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("farflife version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/farflife/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage with configured data directory
	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// Build the progress engine on top of storage
	svc, err := engine.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress data: %v\n", err)
		os.Exit(1)
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ConfirmResets:         cfg.UX.ConfirmResets,
		Celebrations:          cfg.UX.Celebrations,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
		Notifications: notify.Config{
			Enabled:     cfg.Notifications.Enabled,
			GoalReached: cfg.Notifications.GoalReached,
			Sound:       cfg.Notifications.Sound,
		},
	}

	// Run the TUI
	if err := ui.Run(svc, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
