//go:build darwin

// Package notify provides desktop notification support.
// This file delivers the goal celebration on macOS via osascript.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// darwinNotifier delivers notifications through AppleScript's
// `display notification`, so no extra permissions or daemons are needed.
type darwinNotifier struct{}

// newPlatformNotifier creates the macOS notifier.
func newPlatformNotifier() Notifier {
	return &darwinNotifier{}
}

// Send sends a notification without sound.
func (n *darwinNotifier) Send(title, message string) error {
	return n.run(appleScriptNotification(title, message, false))
}

// SendWithSound sends a notification with the system default sound.
func (n *darwinNotifier) SendWithSound(title, message string) error {
	return n.run(appleScriptNotification(title, message, true))
}

// IsSupported returns true if osascript is available.
func (n *darwinNotifier) IsSupported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

func (n *darwinNotifier) run(script string) error {
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}

// appleScriptNotification builds the `display notification` script with
// title and message escaped for AppleScript string literals.
func appleScriptNotification(title, message string, sound bool) string {
	esc := func(s string) string {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		return strings.ReplaceAll(s, "\"", "\\\"")
	}
	script := `display notification "` + esc(message) + `" with title "` + esc(title) + `"`
	if sound {
		script += ` sound name "default"`
	}
	return script
}
