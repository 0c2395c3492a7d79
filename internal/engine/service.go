package engine

import (
	"fmt"
	"log/slog"
	"time"

	"farflife/internal/storage"
)

// historyWindowDays bounds how far back dailyHistory and weeklyProgress
// are retained. Entries older than this are pruned on every mutation
// that appends to them.
const historyWindowDays = 30

// Store is the persistence surface the engine depends on. It is satisfied
// by *storage.Storage and by in-memory fakes in tests.
type Store interface {
	Load() (*storage.AppState, error)
	Save(state *storage.AppState) error
	Reset() (*storage.AppState, error)
}

// Result reports the outcome of an XP-affecting mutation.
type Result struct {
	GoalReached bool // the daily goal was newly crossed by this mutation
	Celebrate   bool // first goal crossing of the day; play the celebration
}

// Stats groups the lifetime counters. They only ever grow, except under
// a full reset.
type Stats struct {
	TotalDaysCompleted   int
	TotalXPEarned        int
	TotalQuestsCompleted int
}

// Service owns the in-memory AppState and exposes every mutation the UI
// is allowed to perform. All methods are synchronous and must be called
// from a single goroutine; the state is persisted after each mutation.
type Service struct {
	store  Store
	state  *storage.AppState
	now    func() time.Time
	logger *slog.Logger
}

// New loads (or initializes) the persisted state and reconciles it to the
// current calendar day. A recovered-from-corruption load is logged but
// not fatal: the returned service is always usable.
func New(store Store) (*Service, error) {
	return NewWithClock(store, time.Now)
}

// NewWithClock is New with an injected clock, so day-boundary behavior is
// deterministic in tests. A nil clock falls back to time.Now.
func NewWithClock(store Store, now func() time.Time) (*Service, error) {
	if now == nil {
		now = time.Now
	}
	s := &Service{
		store:  store,
		now:    now,
		logger: slog.Default(),
	}

	state, err := store.Load()
	if state == nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if err != nil {
		s.logger.Warn("recovered from unreadable state document", "error", err)
	}
	s.state = state

	// Covers the app having been closed across one or more midnights.
	s.ReconcileDay()

	return s, nil
}

// SetNowFunc overrides the clock used for all day-boundary logic.
// Passing nil resets it to time.Now.
func (s *Service) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// SetLogger overrides the logger. Passing nil resets it to slog.Default.
func (s *Service) SetLogger(logger *slog.Logger) {
	if logger == nil {
		s.logger = slog.Default()
		return
	}
	s.logger = logger
}

// Now returns the current time according to the service clock.
func (s *Service) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current date key.
func (s *Service) Today() string {
	return s.Now().Format(storage.DateFormat)
}

// State exposes the live aggregate for rendering. Callers must treat it
// as read-only; all mutation goes through Service methods.
func (s *Service) State() *storage.AppState {
	return s.state
}

// TodayXP returns the XP accumulated since the last rollover.
func (s *Service) TodayXP() int { return s.state.TodayXP }

// DailyGoal returns the XP threshold for a complete day.
func (s *Service) DailyGoal() int { return s.state.DailyGoal }

// Streak returns the current run of consecutive completed days.
func (s *Service) Streak() int { return s.state.Streak }

// BestStreak returns the longest streak ever achieved.
func (s *Service) BestStreak() int { return s.state.BestStreak }

// GoalPercent returns today's progress toward the goal, capped at 100.
func (s *Service) GoalPercent() int {
	if s.state.DailyGoal <= 0 {
		return 0
	}
	pct := s.state.TodayXP * 100 / s.state.DailyGoal
	if pct > 100 {
		pct = 100
	}
	return pct
}

// GoalReachedToday reports whether today's goal has already been met.
func (s *Service) GoalReachedToday() bool {
	return s.state.GoalReachedOn(s.Today())
}

// DailyEssentials returns the once-per-day tasks in display order.
func (s *Service) DailyEssentials() []storage.DailyTask {
	return s.state.DailyEssentials
}

// Quests returns the repeatable quests in display order.
func (s *Service) Quests() []storage.Quest {
	return s.state.Quests
}

// LifetimeStats returns the all-time counters.
func (s *Service) LifetimeStats() Stats {
	return Stats{
		TotalDaysCompleted:   s.state.TotalDaysCompleted,
		TotalXPEarned:        s.state.TotalXPEarned,
		TotalQuestsCompleted: s.state.TotalQuestsCompleted,
	}
}

// persist writes the current state through the store. Write failures are
// logged and swallowed: the in-memory state stays authoritative for the
// rest of the session, and later mutations will retry the write.
func (s *Service) persist() {
	if err := s.store.Save(s.state); err != nil {
		s.logger.Warn("failed to persist state", "error", err)
	}
}
