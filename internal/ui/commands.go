// Package ui provides terminal user interface components for the farflife app.
// This file contains tea.Cmd factories. Engine mutations complete before the
// command is built, so most factories just wrap an already-computed outcome;
// the notification and rollover commands do real asynchronous work.
package ui

import (
	"farflife/internal/engine"
	"farflife/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

// progressCmd wraps the outcome of an XP-earning mutation.
func progressCmd(result engine.Result, err error) tea.Cmd {
	return func() tea.Msg {
		return progressMsg{result: result, err: err}
	}
}

// itemsChangedCmd wraps the outcome of an add, edit, or delete.
func itemsChangedCmd(desc string, err error) tea.Cmd {
	return func() tea.Msg {
		return itemsChangedMsg{desc: desc, err: err}
	}
}

// notifyGoalCmd sends a desktop notification for a reached daily goal.
// Returns nil if notifications are disabled so there is nothing to batch.
func notifyGoalCmd(n notify.Notifier, cfg notify.Config, xp, streak int) tea.Cmd {
	if !cfg.Enabled || !cfg.GoalReached {
		return nil
	}
	return func() tea.Msg {
		err := notify.GoalReached(n, cfg, xp, streak)
		return notifyDoneMsg{err: err}
	}
}

// waitForRolloverCmd blocks on the midnight channel and re-arms after each
// fire. The channel is fed by the scheduler goroutine.
func waitForRolloverCmd(ch <-chan rolloverMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
