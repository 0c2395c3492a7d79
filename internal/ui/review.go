// Package ui provides terminal user interface components for the farflife app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"farflife/internal/engine"
	"farflife/internal/storage"
)

// ReviewPane shows the 7-day review and lifetime statistics. It is
// read-only; the goal and reset operations are global keys handled by
// the app model.
type ReviewPane struct {
	svc     *engine.Service
	styles  *Styles
	focused bool
	width   int
	height  int
}

// NewReviewPane creates a new review pane.
func NewReviewPane(svc *engine.Service, styles *Styles) *ReviewPane {
	return &ReviewPane{
		svc:    svc,
		styles: styles,
	}
}

// SetSize sets the pane dimensions.
func (p *ReviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *ReviewPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *ReviewPane) IsFocused() bool {
	return p.focused
}

// View renders the review pane.
func (p *ReviewPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("📅 REVIEW")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	days := p.svc.WeekView()
	review := p.svc.ReviewSummary()

	// Week grid: one row of day initials, one row of goal markers
	b.WriteString("  " + p.styles.StatLabelStyle.Render(p.dayLabels(days)))
	b.WriteString("\n")
	b.WriteString("  " + p.dayMarkers(days))
	b.WriteString("\n\n")

	rate := p.styles.ReviewRateStyle.Render(fmt.Sprintf("%d%%", review.CompletionRate))
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Goal days: ") +
		p.styles.StatValueStyle.Render(fmt.Sprintf("%d/7", review.DaysCompleted)) +
		p.styles.StatLabelStyle.Render(" · ") + rate)
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Week XP: ") +
		p.styles.XPValueStyle.Render(fmt.Sprintf("%d", review.TotalXP)))
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Streak: ") +
		p.styles.StreakStyle.Render(fmt.Sprintf("🔥%d", review.CurrentStreak)) +
		p.styles.StatLabelStyle.Render(fmt.Sprintf("  best %d", review.BestStreak)))
	b.WriteString("\n")

	if len(review.TopQuests) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatValueStyle.Render("Top quests"))
		b.WriteString("\n")
		for i, q := range review.TopQuests {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1,
				p.styles.ItemPendingStyle.Render(q.Name),
				p.styles.StatLabelStyle.Render(fmt.Sprintf("×%d", q.Count))))
		}
	}

	stats := p.svc.LifetimeStats()
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatValueStyle.Render("Lifetime"))
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render(fmt.Sprintf("%d days · %d XP · %d quests",
		stats.TotalDaysCompleted, stats.TotalXPEarned, stats.TotalQuestsCompleted)))
	b.WriteString("\n")

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// dayLabels returns one-letter weekday initials for the 7-day window.
func (p *ReviewPane) dayLabels(days []engine.DaySummary) string {
	labels := make([]string, 0, len(days))
	for _, d := range days {
		t, err := time.ParseInLocation(storage.DateFormat, d.Date, time.Local)
		if err != nil {
			labels = append(labels, "?")
			continue
		}
		labels = append(labels, t.Format("Mon")[:1])
	}
	return strings.Join(labels, " ")
}

// dayMarkers returns goal markers aligned under the day labels.
func (p *ReviewPane) dayMarkers(days []engine.DaySummary) string {
	marks := make([]string, 0, len(days))
	for _, d := range days {
		switch {
		case d.Completed:
			marks = append(marks, p.styles.DayDoneIcon)
		case d.IsToday:
			marks = append(marks, p.styles.DayTodayStyle.Render("◌"))
		default:
			marks = append(marks, p.styles.DayMissedIcon)
		}
	}
	return strings.Join(marks, " ")
}
