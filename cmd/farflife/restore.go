// Package main is the entry point for the farflife application.
// This file contains the restore subcommand handler.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"farflife/internal/backup"
	"farflife/internal/config"
)

// restoreHelpText is the help message for the restore subcommand.
const restoreHelpText = `farflife restore - Restore data from a backup

USAGE:
    farflife restore [OPTIONS] [NAME]

OPTIONS:
    --latest      Restore from the most recent backup
    -f, --force   Skip confirmation prompt
    -h, --help    Show this help message

ARGUMENTS:
    NAME          Backup name to restore (e.g., 2026-08-29_143022)

DESCRIPTION:
    Restores your progress data from a backup. A safety backup of the
    current data is created automatically before restoring, so a restore
    can always be undone.

    Run 'farflife backup --list' to see available backups.

EXAMPLES:
    # Restore the most recent backup
    farflife restore --latest

    # Restore a specific backup
    farflife restore 2026-08-29_143022

    # Restore without confirmation
    farflife restore --latest --force
`

// runRestore handles the "farflife restore" subcommand.
func runRestore(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)

	latestFlag := fs.Bool("latest", false, "restore from the most recent backup")

	forceFlag := fs.Bool("force", false, "skip confirmation prompt")
	fs.BoolVar(forceFlag, "f", false, "skip confirmation prompt (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, restoreHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(restoreHelpText)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	manager := backup.NewManager(cfg.GetDataDir(), version)

	// Determine which backup to restore
	var name string
	if *latestFlag {
		backups, err := manager.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
			os.Exit(1)
		}
		if len(backups) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no backups found. Run 'farflife backup' first.")
			os.Exit(1)
		}
		name = backups[0].Name
	} else {
		if fs.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "Error: backup name required (or use --latest).")
			fmt.Fprintln(os.Stderr, "Run 'farflife backup --list' to see available backups.")
			os.Exit(1)
		}
		name = fs.Arg(0)
	}

	// Show what will be restored
	info, err := manager.GetBackup(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Restoring backup: %s\n", info.Name)
	fmt.Printf("  Created:      %s\n", info.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Essentials:   %d\n", info.Stats["essentials"])
	fmt.Printf("  Quests:       %d\n", info.Stats["quests"])
	fmt.Printf("  History days: %d\n", info.Stats["history_days"])

	// Confirm unless forced
	if !*forceFlag {
		fmt.Print("\nThis will replace your current data. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Restore cancelled.")
			return
		}
	}

	fmt.Println("✓ Creating safety backup first...")
	if err := manager.Restore(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Restored backup %s\n", name)
}
