// Package reports provides weekly review report generation for the farflife app.
// Reports aggregate the trailing 7-day window of XP, goal completions, and quests.
package reports

import "time"

// WeeklyReview contains the aggregated review for the 7 days ending today.
type WeeklyReview struct {
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	DailyGoal      int         `json:"daily_goal"`
	Days           []DayLine   `json:"days"`
	DaysCompleted  int         `json:"days_completed"`
	TotalXP        int         `json:"total_xp"`
	CompletionRate int         `json:"completion_rate"`
	TopQuests      []QuestLine `json:"top_quests"`
	CurrentStreak  int         `json:"current_streak"`
	BestStreak     int         `json:"best_streak"`
	Lifetime       Lifetime    `json:"lifetime"`
	GeneratedAt    time.Time   `json:"generated_at"`
}

// DayLine is one day within the review window.
type DayLine struct {
	Date      string      `json:"date"`
	DayOfWeek string      `json:"day_of_week"`
	XP        int         `json:"xp"`
	Completed bool        `json:"completed"`
	IsToday   bool        `json:"is_today"`
	Quests    []QuestLine `json:"quests,omitempty"`
}

// QuestLine is a quest name with its completion count.
type QuestLine struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Lifetime contains the all-time counters.
type Lifetime struct {
	DaysCompleted   int `json:"days_completed"`
	XPEarned        int `json:"xp_earned"`
	QuestsCompleted int `json:"quests_completed"`
}
