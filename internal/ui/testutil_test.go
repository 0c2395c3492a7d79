package ui

import (
	"io"
	"log/slog"
	"testing"

	"farflife/internal/config"
	"farflife/internal/engine"
	"farflife/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors so rendered output can be matched as plain text.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestService creates an engine over a temporary data directory.
// The state document starts from the seeded defaults.
func createTestService(t *testing.T) *engine.Service {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	svc, err := engine.New(store)
	if err != nil {
		t.Fatalf("failed to create test engine: %v", err)
	}
	svc.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// clearItems removes every seeded essential and quest so a test can start
// from an empty board.
func clearItems(t *testing.T, svc *engine.Service) {
	t.Helper()
	for len(svc.DailyEssentials()) > 0 {
		if err := svc.DeleteDailyTask(svc.DailyEssentials()[0].ID); err != nil {
			t.Fatalf("failed to delete essential: %v", err)
		}
	}
	for len(svc.Quests()) > 0 {
		if err := svc.DeleteQuest(svc.Quests()[0].ID); err != nil {
			t.Fatalf("failed to delete quest: %v", err)
		}
	}
}
