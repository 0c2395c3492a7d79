package reports

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"farflife/internal/engine"
	"farflife/internal/storage"
)

func createTestGenerator(t *testing.T) (*Generator, *engine.Service) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	clock := func() time.Time {
		return time.Date(2026, 3, 16, 18, 0, 0, 0, time.Local)
	}
	store.SetNowFunc(clock)

	svc, err := engine.NewWithClock(store, clock)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return NewGenerator(svc), svc
}

func TestGenerateWeekly(t *testing.T) {
	gen, svc := createTestGenerator(t)

	svc.CompleteDailyTask("de2")
	svc.CompleteQuest("q1")
	svc.CompleteQuest("q1") // 120 XP, goal reached

	review := gen.GenerateWeekly()

	if len(review.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(review.Days))
	}
	if review.StartDate != "2026-03-10" || review.EndDate != "2026-03-16" {
		t.Errorf("window wrong: %s to %s", review.StartDate, review.EndDate)
	}
	if !review.Days[6].IsToday {
		t.Error("last day not flagged as today")
	}
	if review.Days[6].XP != 120 || !review.Days[6].Completed {
		t.Errorf("today wrong: %+v", review.Days[6])
	}
	if review.DaysCompleted != 1 || review.TotalXP != 120 {
		t.Errorf("summary wrong: %+v", review)
	}
	if review.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", review.CurrentStreak)
	}
	if review.Lifetime.XPEarned != 120 || review.Lifetime.QuestsCompleted != 2 {
		t.Errorf("lifetime wrong: %+v", review.Lifetime)
	}
	if review.Days[6].DayOfWeek != "Mon" {
		t.Errorf("expected Mon for 2026-03-16, got %s", review.Days[6].DayOfWeek)
	}
}

func TestFormatWeeklyMarkdown(t *testing.T) {
	gen, svc := createTestGenerator(t)
	svc.CompleteQuest("q1")

	md := FormatWeeklyMarkdown(gen.GenerateWeekly())

	for _, want := range []string{
		"# Weekly Review: 2026-03-10 to 2026-03-16",
		"**Total XP:** 50",
		"Learn a New Language (x1)",
		"- XP earned: 50",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatWeeklyJSON(t *testing.T) {
	gen, _ := createTestGenerator(t)

	data, err := FormatWeeklyJSON(gen.GenerateWeekly())
	if err != nil {
		t.Fatalf("FormatWeeklyJSON failed: %v", err)
	}

	var decoded WeeklyReview
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Days) != 7 {
		t.Errorf("expected 7 days in JSON, got %d", len(decoded.Days))
	}
}
