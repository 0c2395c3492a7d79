//go:build !darwin && !linux

// Package notify provides desktop notification support.
// On platforms without a wired backend the celebration stays in the TUI;
// this notifier reports unsupported so New falls back to the no-op.
package notify

// stubNotifier stands in on platforms without a notification backend.
type stubNotifier struct{}

// newPlatformNotifier creates the stub notifier.
func newPlatformNotifier() Notifier {
	return &stubNotifier{}
}

// Send does nothing; the in-app celebration is the only surface here.
func (n *stubNotifier) Send(title, message string) error {
	return nil
}

// SendWithSound does nothing.
func (n *stubNotifier) SendWithSound(title, message string) error {
	return nil
}

// IsSupported always reports false so callers use the no-op path.
func (n *stubNotifier) IsSupported() bool {
	return false
}
