package engine

// ResetToday wipes today's progress as if the day had just started. If
// today was already credited as complete, the credit is undone: today is
// removed from weeklyProgress and the day/streak counters step back
// (floored at zero). Lifetime XP and quest totals are never revoked.
func (s *Service) ResetToday() {
	s.ReconcileDay()
	today := s.Today()

	if s.state.GoalReachedOn(today) {
		weekly := s.state.WeeklyProgress[:0]
		for _, date := range s.state.WeeklyProgress {
			if date != today {
				weekly = append(weekly, date)
			}
		}
		s.state.WeeklyProgress = weekly

		if s.state.TotalDaysCompleted > 0 {
			s.state.TotalDaysCompleted--
		}
		if s.state.Streak > 0 {
			s.state.Streak--
		}
	}

	for i := range s.state.DailyEssentials {
		s.state.DailyEssentials[i].Completed = false
	}
	for i := range s.state.Quests {
		s.state.Quests[i].CompletedCount = 0
	}
	s.state.TodayXP = 0
	s.state.CelebratedToday = false

	s.persist()
	s.logger.Info("reset today's progress", "date", today)
}

// ResetAll discards the persisted document and starts over from fresh
// defaults with today's date pre-populated.
func (s *Service) ResetAll() error {
	state, err := s.store.Reset()
	if err != nil {
		return err
	}
	s.state = state
	s.state.TodayDate = s.Today()

	s.persist()
	s.logger.Info("reset all data")
	return nil
}
