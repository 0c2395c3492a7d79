// Package reports provides weekly review report generation for the farflife app.
package reports

import (
	"fmt"
	"strings"
)

// FormatWeeklyMarkdown formats a weekly review as human-readable Markdown.
func FormatWeeklyMarkdown(review *WeeklyReview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Review: %s to %s\n\n", review.StartDate, review.EndDate)
	fmt.Fprintf(&b, "**Days completed:** %d/7 (%d%%)\n", review.DaysCompleted, review.CompletionRate)
	fmt.Fprintf(&b, "**Total XP:** %d (goal %d/day)\n", review.TotalXP, review.DailyGoal)
	fmt.Fprintf(&b, "**Streak:** %d (best %d)\n\n", review.CurrentStreak, review.BestStreak)

	b.WriteString("## Days\n\n")
	b.WriteString("| Day | Date | XP | Goal |\n")
	b.WriteString("|-----|------|----|------|\n")
	for _, day := range review.Days {
		mark := " "
		if day.Completed {
			mark = "✓"
		}
		name := day.DayOfWeek
		if day.IsToday {
			name += " (today)"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", name, day.Date, day.XP, mark)
	}
	b.WriteString("\n")

	if len(review.TopQuests) > 0 {
		b.WriteString("## Top Quests\n\n")
		for i, quest := range review.TopQuests {
			fmt.Fprintf(&b, "%d. %s (x%d)\n", i+1, quest.Name, quest.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Lifetime\n\n")
	fmt.Fprintf(&b, "- Days completed: %d\n", review.Lifetime.DaysCompleted)
	fmt.Fprintf(&b, "- XP earned: %d\n", review.Lifetime.XPEarned)
	fmt.Fprintf(&b, "- Quests completed: %d\n", review.Lifetime.QuestsCompleted)

	return b.String()
}
