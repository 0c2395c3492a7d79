// Package notify provides cross-platform desktop notification support.
// It uses native notification mechanisms on macOS (osascript) and Linux (notify-send).
package notify

import "fmt"

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send sends a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound sends a notification with sound.
	SendWithSound(title, message string) error

	// IsSupported returns true if notifications are supported on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(title, message string) error {
	return nil
}

func (n *noopNotifier) SendWithSound(title, message string) error {
	return nil
}

func (n *noopNotifier) IsSupported() bool {
	return false
}

// New creates a platform-specific notifier.
// Returns a no-op notifier if the platform doesn't support notifications.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}

// Config holds notification configuration.
type Config struct {
	// Enabled enables/disables notifications
	Enabled bool `yaml:"enabled"`

	// GoalReached notifies the first time the daily goal is crossed each day
	GoalReached bool `yaml:"goal_reached"`

	// Sound enables notification sounds
	Sound bool `yaml:"sound"`
}

// DefaultConfig returns the default notification configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		GoalReached: true,  // On when notifications are enabled
		Sound:       false, // No sound by default
	}
}

// GoalReached sends the daily-goal celebration according to cfg. The
// engine guarantees this fires at most once per day; this function only
// decides whether and how to deliver it.
func GoalReached(n Notifier, cfg Config, xp, streak int) error {
	if !cfg.Enabled || !cfg.GoalReached {
		return nil
	}

	message := fmt.Sprintf("Daily goal reached with %d XP!", xp)
	if streak > 1 {
		message = fmt.Sprintf("Daily goal reached with %d XP! %d day streak!", xp, streak)
	}

	if cfg.Sound {
		return n.SendWithSound("farflife", message)
	}
	return n.Send("farflife", message)
}
