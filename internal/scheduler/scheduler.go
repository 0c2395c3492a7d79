// Package scheduler arms the day-rollover callback for local midnight.
// It exists so the rest of the app never watches the clock itself: call
// the engine's reconcile on startup, hand it to a Midnight, and every
// boundary after that is covered.
package scheduler

import (
	"log/slog"
	"sync"
	"time"
)

// NextMidnight returns the first instant of the calendar day after now,
// in now's location.
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// Midnight runs a callback at every local midnight until stopped. One
// one-shot timer is armed at a time; after each firing it re-arms for
// the following midnight. The callback runs on the scheduler goroutine,
// so callers that are not safe for concurrent use should forward to
// their own loop (the TUI turns it into a message).
type Midnight struct {
	fn     func(time.Time)
	now    func() time.Time
	logger *slog.Logger

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewMidnight creates a scheduler for fn. The callback receives the
// boundary instant it fired for. It does not start until Start is
// called.
func NewMidnight(fn func(time.Time)) *Midnight {
	return &Midnight{
		fn:     fn,
		now:    time.Now,
		logger: slog.Default(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// SetNowFunc overrides the clock used to compute the delay to midnight.
// Must be called before Start. Passing nil resets it to time.Now.
func (m *Midnight) SetNowFunc(now func() time.Time) {
	if now == nil {
		m.now = time.Now
		return
	}
	m.now = now
}

// SetLogger overrides the logger. Must be called before Start.
func (m *Midnight) SetLogger(logger *slog.Logger) {
	if logger == nil {
		m.logger = slog.Default()
		return
	}
	m.logger = logger
}

// Start launches the scheduling loop on its own goroutine.
func (m *Midnight) Start() {
	go m.run()
}

// Stop cancels the armed timer and waits for the loop to exit. Safe to
// call more than once; the callback never fires after Stop returns.
func (m *Midnight) Stop() {
	m.once.Do(func() { close(m.stop) })
	<-m.done
}

func (m *Midnight) run() {
	defer close(m.done)
	for {
		now := m.now()
		next := NextMidnight(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
			m.logger.Info("midnight rollover", "boundary", next.Format(time.RFC3339))
			m.fn(next)
		case <-m.stop:
			timer.Stop()
			return
		}
	}
}
