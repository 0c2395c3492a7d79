// Package reports provides weekly review report generation for the farflife app.
package reports

import (
	"time"

	"farflife/internal/engine"
	"farflife/internal/storage"
)

// Generator creates reports from the live engine state.
type Generator struct {
	svc *engine.Service
}

// NewGenerator creates a new report generator.
func NewGenerator(svc *engine.Service) *Generator {
	return &Generator{svc: svc}
}

// GenerateWeekly builds the review for the 7 days ending today. Day
// reconciliation happens inside the engine, so a report generated just
// after midnight already reflects the rolled-over state.
func (g *Generator) GenerateWeekly() *WeeklyReview {
	week := g.svc.WeekView()
	summary := g.svc.ReviewSummary()
	stats := g.svc.LifetimeStats()

	days := make([]DayLine, 0, len(week))
	for _, day := range week {
		days = append(days, DayLine{
			Date:      day.Date,
			DayOfWeek: dayOfWeek(day.Date),
			XP:        day.XP,
			Completed: day.Completed,
			IsToday:   day.IsToday,
			Quests:    questLines(day.Quests),
		})
	}

	review := &WeeklyReview{
		DailyGoal:      g.svc.DailyGoal(),
		Days:           days,
		DaysCompleted:  summary.DaysCompleted,
		TotalXP:        summary.TotalXP,
		CompletionRate: summary.CompletionRate,
		TopQuests:      questLines(summary.TopQuests),
		CurrentStreak:  summary.CurrentStreak,
		BestStreak:     summary.BestStreak,
		Lifetime: Lifetime{
			DaysCompleted:   stats.TotalDaysCompleted,
			XPEarned:        stats.TotalXPEarned,
			QuestsCompleted: stats.TotalQuestsCompleted,
		},
		GeneratedAt: g.svc.Now(),
	}
	if len(days) > 0 {
		review.StartDate = days[0].Date
		review.EndDate = days[len(days)-1].Date
	}
	return review
}

func questLines(counts []storage.QuestCount) []QuestLine {
	if len(counts) == 0 {
		return nil
	}
	lines := make([]QuestLine, 0, len(counts))
	for _, qc := range counts {
		lines = append(lines, QuestLine{Name: qc.Name, Count: qc.Count})
	}
	return lines
}

func dayOfWeek(date string) string {
	t, err := time.ParseInLocation(storage.DateFormat, date, time.Local)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
