package scheduler

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestNextMidnight(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"morning",
			time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			"just before midnight",
			time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly midnight rolls to the next day",
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			"month boundary",
			time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"year boundary",
			time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC),
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMidnight(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextMidnight(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestMidnight_FiresAndRearms(t *testing.T) {
	fired := make(chan time.Time, 8)

	m := NewMidnight(func(boundary time.Time) { fired <- boundary })
	m.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	// A frozen clock a few ms short of midnight makes every armed timer
	// fire almost immediately, so re-arming is observable without
	// waiting for a real boundary.
	frozen := time.Date(2026, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	m.SetNowFunc(func() time.Time { return frozen })

	m.Start()
	defer m.Stop()

	wantBoundary := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		select {
		case boundary := <-fired:
			if !boundary.Equal(wantBoundary) {
				t.Errorf("firing %d: boundary = %v, want %v", i+1, boundary, wantBoundary)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("callback did not fire (firing %d)", i+1)
		}
	}
}

func TestMidnight_StopBeforeFire(t *testing.T) {
	m := NewMidnight(func(time.Time) {
		t.Error("callback fired after Stop")
	})
	m.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	})
	m.Start()
	m.Stop()

	// Idempotent.
	m.Stop()
}
