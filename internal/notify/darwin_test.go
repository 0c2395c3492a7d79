//go:build darwin

package notify

import (
	"strings"
	"testing"
)

func TestAppleScriptNotification(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		message string
		sound   bool
		want    []string
		notWant []string
	}{
		{
			name:    "plain",
			title:   "farflife",
			message: "Daily goal reached with 120 XP!",
			want:    []string{`display notification "Daily goal reached with 120 XP!"`, `with title "farflife"`},
			notWant: []string{"sound name"},
		},
		{
			name:    "with sound",
			title:   "farflife",
			message: "Daily goal reached with 120 XP!",
			sound:   true,
			want:    []string{`sound name "default"`},
		},
		{
			name:    "escapes quotes and backslashes",
			title:   `say "hi"`,
			message: `path\to\glory`,
			want:    []string{`say \"hi\"`, `path\\to\\glory`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := appleScriptNotification(tt.title, tt.message, tt.sound)
			for _, w := range tt.want {
				if !strings.Contains(script, w) {
					t.Errorf("script %q missing %q", script, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(script, nw) {
					t.Errorf("script %q unexpectedly contains %q", script, nw)
				}
			}
		})
	}
}
