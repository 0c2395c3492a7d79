package engine

// CompleteDailyTask marks a daily essential as done and banks its XP.
// Completing an already-completed task is a silent no-op; an unknown id
// returns a NotFoundError with the state unchanged.
func (s *Service) CompleteDailyTask(id string) (Result, error) {
	s.ReconcileDay()

	task := s.state.FindDailyTask(id)
	if task == nil {
		return Result{}, &NotFoundError{Kind: "daily essential", ID: id}
	}
	if task.Completed {
		return Result{}, nil
	}

	task.Completed = true
	s.state.TodayXP += task.XP
	s.state.TotalXPEarned += task.XP

	res := s.detectGoal()
	s.persist()
	return res, nil
}

// CompleteQuest records one repetition of a quest. Quests have no daily
// cap: every call banks the quest's XP again.
func (s *Service) CompleteQuest(id string) (Result, error) {
	s.ReconcileDay()

	quest := s.state.FindQuest(id)
	if quest == nil {
		return Result{}, &NotFoundError{Kind: "quest", ID: id}
	}

	quest.CompletedCount++
	s.state.TodayXP += quest.XP
	s.state.TotalXPEarned += quest.XP
	s.state.TotalQuestsCompleted++

	res := s.detectGoal()
	s.persist()
	return res, nil
}

// SetDailyGoal changes the XP threshold for a complete day. Goals below
// 10 are rejected. Lowering the goal can newly cross the threshold with
// XP already accumulated today, so detection re-runs; raising it never
// revokes credit already given.
func (s *Service) SetDailyGoal(goal int) (Result, error) {
	if goal < 10 {
		return Result{}, &ValidationError{Field: "daily goal", Reason: "must be at least 10 XP"}
	}

	s.ReconcileDay()
	s.state.DailyGoal = goal

	res := s.detectGoal()
	s.persist()
	return res, nil
}

// detectGoal credits a completed day the first time todayXP crosses the
// goal. It is idempotent per day: once today is in weeklyProgress no
// further XP gain re-increments the streak or day counters.
func (s *Service) detectGoal() Result {
	today := s.Today()
	if s.state.TodayXP < s.state.DailyGoal || s.state.GoalReachedOn(today) {
		return Result{}
	}

	s.state.WeeklyProgress = append(s.state.WeeklyProgress, today)
	s.state.TotalDaysCompleted++
	s.state.Streak++
	if s.state.Streak > s.state.BestStreak {
		s.state.BestStreak = s.state.Streak
	}
	s.state.LastCompletedDate = today
	s.pruneWindows()

	res := Result{GoalReached: true}
	if !s.state.CelebratedToday {
		s.state.CelebratedToday = true
		res.Celebrate = true
	}

	s.logger.Info("daily goal reached",
		"date", today,
		"xp", s.state.TodayXP,
		"streak", s.state.Streak,
	)
	return res
}
