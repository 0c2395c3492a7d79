// Package main is the entry point for the farflife application.
// This file contains the backup subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"farflife/internal/backup"
	"farflife/internal/config"
)

// backupHelpText is the help message for the backup subcommand.
const backupHelpText = `farflife backup - Manage data backups

USAGE:
    farflife backup [OPTIONS]

OPTIONS:
    -l, --list    List available backups
    -h, --help    Show this help message

DESCRIPTION:
    Creates a timestamped backup of your progress data in ~/.farflife/backups/.
    Backups include the data file and a manifest with checksums for
    integrity verification.

    Old backups are automatically pruned, keeping the 10 most recent.

EXAMPLES:
    # Create a backup
    farflife backup

    # List available backups
    farflife backup --list
`

// runBackup handles the "farflife backup" subcommand.
func runBackup(args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)

	listFlag := fs.Bool("list", false, "list available backups")
	fs.BoolVar(listFlag, "l", false, "list available backups (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, backupHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(backupHelpText)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	manager := backup.NewManager(cfg.GetDataDir(), version)

	if *listFlag {
		listBackups(manager)
		return
	}

	createBackup(manager)
}

// createBackup creates a new backup and prints the result.
func createBackup(manager *backup.Manager) {
	fmt.Println("Creating backup...")

	name, err := manager.Create()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup: %v\n", err)
		os.Exit(1)
	}

	info, err := manager.GetBackup(name)
	if err != nil {
		// Backup was created; stats are best-effort
		fmt.Printf("✓ Backup created: %s\n", name)
		return
	}

	fmt.Printf("✓ Backup created: %s\n", name)
	fmt.Printf("  Essentials:   %d\n", info.Stats["essentials"])
	fmt.Printf("  Quests:       %d\n", info.Stats["quests"])
	fmt.Printf("  History days: %d\n", info.Stats["history_days"])
}

// listBackups prints all available backups, newest first.
func listBackups(manager *backup.Manager) {
	backups, err := manager.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
		os.Exit(1)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Println("Run 'farflife backup' to create one.")
		return
	}

	fmt.Printf("Available backups (%d):\n\n", len(backups))
	for _, b := range backups {
		age := formatAge(time.Since(b.CreatedAt))
		fmt.Printf("  %s  (%s ago)\n", b.Name, age)
		fmt.Printf("    essentials: %d, quests: %d, history days: %d\n",
			b.Stats["essentials"], b.Stats["quests"], b.Stats["history_days"])
	}

	fmt.Println("\nRestore with: farflife restore <name>")
}

// formatAge formats a duration as a human-readable age string.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "moments"
	case d < time.Hour:
		m := int(d.Minutes())
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	default:
		weeks := int(d.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", weeks)
	}
}
