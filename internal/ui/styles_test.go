package ui

import (
	"strings"
	"testing"

	"farflife/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStylesFromTheme_Defaults(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	if s.ColorPrimary != lipgloss.Color("#7C3AED") {
		t.Errorf("default primary = %s", s.ColorPrimary)
	}
	if s.CheckboxDone == "" || s.CheckboxPending == "" {
		t.Error("checkbox icons not initialized")
	}
}

func TestNewStylesFromTheme_CustomColors(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{
		Primary: "#FF0000",
		Muted:   "#333333",
	})

	if s.ColorPrimary != lipgloss.Color("#FF0000") {
		t.Errorf("custom primary = %s", s.ColorPrimary)
	}
	if s.ColorMuted != lipgloss.Color("#333333") {
		t.Errorf("custom muted = %s", s.ColorMuted)
	}
}

func TestRenderXPBar(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	tests := []struct {
		name    string
		percent int
		width   int
		filled  int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"over full is clamped", 250, 10, 10},
		{"negative is clamped", -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := s.RenderXPBar(tt.percent, tt.width)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != tt.width-tt.filled {
				t.Errorf("empty cells = %d, want %d", got, tt.width-tt.filled)
			}
		})
	}
}

func TestRenderHelp(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	out := s.RenderHelp("a", "add", "x", "del")
	if !strings.Contains(out, "[a] add") || !strings.Contains(out, "[x] del") {
		t.Errorf("RenderHelp output = %q", out)
	}
}
