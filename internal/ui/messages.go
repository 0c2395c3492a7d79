// Package ui provides terminal user interface components for the farflife app.
// This file defines message types routed through the Bubble Tea event loop.
// Engine mutations are synchronous and in-memory; the messages here carry
// their outcomes to the app model so celebrations, notifications, and status
// text are handled in one place.
package ui

import (
	"time"

	"farflife/internal/engine"
)

// =============================================================================
// Progress Messages
// =============================================================================

// progressMsg is sent after any mutation that can earn XP or move the
// daily goal (completing an essential or quest, changing the goal).
type progressMsg struct {
	result engine.Result
	err    error
}

// itemsChangedMsg is sent after an item was added, edited, or deleted.
type itemsChangedMsg struct {
	desc string // short status text, e.g. "Added Stretch"
	err  error
}

// =============================================================================
// Day Cycle Messages
// =============================================================================

// rolloverMsg is sent when the midnight scheduler fires. The app reconciles
// the engine's day and refreshes every pane.
type rolloverMsg time.Time

// =============================================================================
// Notification Messages
// =============================================================================

// notifyDoneMsg is sent when a desktop notification attempt completes.
type notifyDoneMsg struct {
	err error
}
