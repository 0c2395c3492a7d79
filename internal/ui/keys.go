// Package ui provides terminal user interface components for the farflife app.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and future customization.
package ui

import (
	"strings"

	"farflife/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	NextPane   key.Binding
	Pane1      key.Binding
	Pane2      key.Binding
	Pane3      key.Binding
	SetGoal    key.Binding
	ResetToday key.Binding
	ResetAll   key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextPane: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextPane, "tab")...),
			key.WithHelp("tab", "next pane"),
		),
		Pane1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane1, "1")...),
			key.WithHelp("1", "essentials"),
		),
		Pane2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane2, "2")...),
			key.WithHelp("2", "quests"),
		),
		Pane3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane3, "3")...),
			key.WithHelp("3", "review"),
		),
		SetGoal: key.NewBinding(
			key.WithKeys(parseKeys(cfg.SetGoal, "s")...),
			key.WithHelp("s", "set goal"),
		),
		ResetToday: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ResetToday, "r")...),
			key.WithHelp("r", "reset today"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ResetAll, "R")...),
			key.WithHelp("R", "reset all"),
		),
	}
}

// =============================================================================
// Navigation Keys (shared by list-based panes)
// =============================================================================

// NavigationKeyMap defines keys for list navigation.
type NavigationKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultNavigationKeyMap returns the default navigation key bindings.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NewNavigationKeyMap(&config.KeysConfig{})
}

// NewNavigationKeyMap creates navigation key bindings from config.
func NewNavigationKeyMap(cfg *config.KeysConfig) NavigationKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NavigationKeyMap{
		Up: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up, "k", "up")...),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down, "j", "down")...),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Top, "g")...),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Bottom, "G")...),
			key.WithHelp("G", "bottom"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Item Keys (shared by the essentials and quests panes)
// =============================================================================

// ItemKeyMap defines keys for the list panes that hold completable items.
type ItemKeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Edit     key.Binding
	Delete   key.Binding
	NavigationKeyMap
}

// DefaultItemKeyMap returns the default item pane key bindings.
func DefaultItemKeyMap() ItemKeyMap {
	return NewItemKeyMap(&config.KeysConfig{})
}

// NewItemKeyMap creates item key bindings from config.
func NewItemKeyMap(cfg *config.KeysConfig) ItemKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return ItemKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.AddItem, "a")...),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.CompleteItem, "d", "enter", " ")...),
			key.WithHelp("d/space", "complete"),
		),
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.EditItem, "e")...),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.DeleteItem, "x")...),
			key.WithHelp("x", "delete"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for an item pane (implements help.KeyMap).
func (k ItemKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Complete, k.Delete, k.Down}
}

// FullHelp returns the full help for an item pane (implements help.KeyMap).
func (k ItemKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Complete, k.Edit, k.Delete},
		{k.Up, k.Down, k.Top, k.Bottom},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
