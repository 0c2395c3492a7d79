package engine

import (
	"math"
	"sort"

	"farflife/internal/storage"
)

// DaySummary is one day of the review window. Today's numbers come from
// live state; closed days come from the archived history.
type DaySummary struct {
	Date      string
	XP        int
	Quests    []storage.QuestCount
	Completed bool
	IsToday   bool
}

// Review is the 7-day aggregate shown on the review pane.
type Review struct {
	DaysCompleted  int
	TotalXP        int
	CompletionRate int // percentage, 0-100
	TopQuests      []storage.QuestCount
	CurrentStreak  int
	BestStreak     int
}

// WeekView returns the 7 calendar days ending today, oldest first.
func (s *Service) WeekView() []DaySummary {
	s.ReconcileDay()
	today := s.Today()

	week := make([]DaySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := s.Now().AddDate(0, 0, -i).Format(storage.DateFormat)
		day := DaySummary{
			Date:      date,
			Completed: s.state.GoalReachedOn(date),
			IsToday:   date == today,
		}
		if day.IsToday {
			day.XP = s.state.TodayXP
			day.Quests = s.state.ActiveQuestCounts()
		} else if rec := s.state.HistoryFor(date); rec != nil {
			day.XP = rec.XP
			day.Quests = rec.Quests
		}
		week = append(week, day)
	}
	return week
}

// ReviewSummary aggregates a week view into the review totals. Top quests
// are ranked by total count across the week; ties keep the name that was
// encountered first.
func (s *Service) ReviewSummary() Review {
	week := s.WeekView()

	rev := Review{
		CurrentStreak: s.state.Streak,
		BestStreak:    s.state.BestStreak,
	}

	counts := make(map[string]int)
	var order []string
	for _, day := range week {
		rev.TotalXP += day.XP
		if day.Completed {
			rev.DaysCompleted++
		}
		for _, qc := range day.Quests {
			if _, seen := counts[qc.Name]; !seen {
				order = append(order, qc.Name)
			}
			counts[qc.Name] += qc.Count
		}
	}
	rev.CompletionRate = int(math.Round(float64(rev.DaysCompleted) / 7 * 100))

	top := make([]storage.QuestCount, 0, len(order))
	for _, name := range order {
		top = append(top, storage.QuestCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > 3 {
		top = top[:3]
	}
	rev.TopQuests = top

	return rev
}
