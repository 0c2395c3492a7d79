package engine

import "farflife/internal/storage"

// ReconcileDay rolls the state over to the current calendar day. It is a
// no-op (returning false) when today's date is already current, so it is
// safe to call repeatedly: on startup, from the midnight scheduler, and
// before any mutation.
func (s *Service) ReconcileDay() bool {
	today := s.Today()
	if s.state.TodayDate == today {
		return false
	}

	prev := s.state.TodayDate

	// Archive the closing day, but only if it earned anything. A zero-XP
	// day leaves no record and the review window treats it as zero.
	if prev != "" && s.state.TodayXP > 0 {
		s.archiveDay(prev)
	}

	// Streak continuity. The streak already advanced at the moment the
	// goal was crossed, so a completed day followed immediately by today
	// needs nothing. Anything else (a gap, or a day that never reached
	// the goal) breaks the run.
	if prev != "" {
		reached := s.state.TodayXP >= s.state.DailyGoal
		if !reached || !s.isYesterday(prev) {
			s.state.Streak = 0
		}
	}

	for i := range s.state.DailyEssentials {
		s.state.DailyEssentials[i].Completed = false
	}
	for i := range s.state.Quests {
		s.state.Quests[i].CompletedCount = 0
	}

	s.state.TodayXP = 0
	s.state.TodayDate = today
	s.state.CelebratedToday = false

	s.pruneWindows()
	s.persist()

	s.logger.Info("rolled over to new day", "date", today, "previous", prev)
	return true
}

// archiveDay upserts a DayRecord snapshot for the given closing date.
func (s *Service) archiveDay(date string) {
	rec := storage.DayRecord{
		Date:   date,
		XP:     s.state.TodayXP,
		Quests: s.state.ActiveQuestCounts(),
	}
	if existing := s.state.HistoryFor(date); existing != nil {
		*existing = rec
		return
	}
	s.state.DailyHistory = append(s.state.DailyHistory, rec)
}

// isYesterday reports whether date is the calendar day immediately before
// the service clock's today.
func (s *Service) isYesterday(date string) bool {
	yesterday := s.Now().AddDate(0, 0, -1).Format(storage.DateFormat)
	return date == yesterday
}

// pruneWindows drops history and weekly-progress entries older than the
// trailing retention window. Date keys sort lexicographically, so a plain
// string comparison against the cutoff is enough.
func (s *Service) pruneWindows() {
	cutoff := s.Now().AddDate(0, 0, -historyWindowDays).Format(storage.DateFormat)

	history := s.state.DailyHistory[:0]
	for _, rec := range s.state.DailyHistory {
		if rec.Date >= cutoff {
			history = append(history, rec)
		}
	}
	s.state.DailyHistory = history

	weekly := s.state.WeeklyProgress[:0]
	for _, date := range s.state.WeeklyProgress {
		if date >= cutoff {
			weekly = append(weekly, date)
		}
	}
	s.state.WeeklyProgress = weekly
}
