package engine

import (
	"reflect"
	"testing"

	"farflife/internal/storage"
)

func TestReconcileDay_NoOpSameDay(t *testing.T) {
	svc, _ := createTestService(t)

	svc.CompleteDailyTask("de1")
	before := svc.State().Clone()

	if svc.ReconcileDay() {
		t.Error("reconcile reported a rollover within the same day")
	}
	if !reflect.DeepEqual(before, svc.State()) {
		t.Error("same-day reconcile mutated state")
	}
}

func TestReconcileDay_Idempotent(t *testing.T) {
	svc, clk := createTestService(t)

	reachGoal(t, svc)
	clk.AdvanceDays(1)

	if !svc.ReconcileDay() {
		t.Fatal("expected a rollover after advancing the clock")
	}
	after := svc.State().Clone()

	if svc.ReconcileDay() {
		t.Error("second reconcile rolled over again")
	}
	if !reflect.DeepEqual(after, svc.State()) {
		t.Error("second reconcile changed state")
	}
	if len(svc.State().DailyHistory) != 1 {
		t.Errorf("day archived twice: %d records", len(svc.State().DailyHistory))
	}
}

func TestReconcileDay_ArchivesAndResets(t *testing.T) {
	svc, clk := createTestService(t)
	day1 := clk.Now().Format(storage.DateFormat)

	svc.CompleteDailyTask("de2")
	svc.CompleteQuest("q1")
	svc.CompleteQuest("q1")
	clk.AdvanceDays(1)
	svc.ReconcileDay()

	rec := svc.State().HistoryFor(day1)
	if rec == nil {
		t.Fatal("closed day not archived")
	}
	if rec.XP != 120 {
		t.Errorf("expected archived XP 120, got %d", rec.XP)
	}
	want := []storage.QuestCount{{Name: "Learn a New Language", Count: 2}}
	if !reflect.DeepEqual(rec.Quests, want) {
		t.Errorf("expected quests %v, got %v", want, rec.Quests)
	}

	state := svc.State()
	if state.TodayXP != 0 {
		t.Errorf("todayXP not reset: %d", state.TodayXP)
	}
	if state.TodayDate != clk.Now().Format(storage.DateFormat) {
		t.Errorf("todayDate not advanced: %s", state.TodayDate)
	}
	if state.CelebratedToday {
		t.Error("celebration guard not cleared")
	}
	if state.FindDailyTask("de2").Completed {
		t.Error("task completion not reset")
	}
	if state.FindQuest("q1").CompletedCount != 0 {
		t.Error("quest count not reset")
	}
}

func TestReconcileDay_ZeroXPDayLeavesNoRecord(t *testing.T) {
	svc, clk := createTestService(t)
	day1 := clk.Now().Format(storage.DateFormat)

	clk.AdvanceDays(1)
	svc.ReconcileDay()

	if svc.State().HistoryFor(day1) != nil {
		t.Error("zero-XP day should not be archived")
	}
}

func TestReconcileDay_StreakSurvivesCompletedYesterday(t *testing.T) {
	svc, clk := createTestService(t)

	reachGoal(t, svc)
	clk.AdvanceDays(1)
	svc.ReconcileDay()

	if svc.Streak() != 1 {
		t.Errorf("streak broken by completed yesterday: %d", svc.Streak())
	}
}

func TestReconcileDay_StreakBreaksOnMissedGoal(t *testing.T) {
	svc, clk := createTestService(t)

	reachGoal(t, svc)
	clk.AdvanceDays(1)
	svc.ReconcileDay()
	svc.CompleteDailyTask("de1") // 10 XP, well short of the goal

	clk.AdvanceDays(1)
	svc.ReconcileDay()

	if svc.Streak() != 0 {
		t.Errorf("streak survived a missed day: %d", svc.Streak())
	}
}

func TestStreakContinuity(t *testing.T) {
	svc, clk := createTestService(t)

	// Day 1 and 2 completed, day 3 skipped entirely, day 4 completed.
	reachGoal(t, svc)
	clk.AdvanceDays(1)
	reachGoal(t, svc)
	if svc.Streak() != 2 {
		t.Fatalf("setup: expected streak 2 after day 2, got %d", svc.Streak())
	}

	clk.AdvanceDays(2)
	reachGoal(t, svc)

	if svc.Streak() != 1 {
		t.Errorf("expected streak 1 after the gap, got %d", svc.Streak())
	}
	if svc.BestStreak() != 2 {
		t.Errorf("expected best streak 2, got %d", svc.BestStreak())
	}
	if svc.LifetimeStats().TotalDaysCompleted != 3 {
		t.Errorf("expected 3 days completed, got %d", svc.LifetimeStats().TotalDaysCompleted)
	}
}

func TestStreakContinuity_IdleDayObserved(t *testing.T) {
	svc, clk := createTestService(t)

	// Same shape, but the app is opened (and reconciled) on the idle day.
	reachGoal(t, svc)
	clk.AdvanceDays(1)
	reachGoal(t, svc)

	clk.AdvanceDays(1)
	svc.ReconcileDay()
	if svc.Streak() != 2 {
		t.Fatalf("streak broken too early: %d", svc.Streak())
	}

	clk.AdvanceDays(1)
	reachGoal(t, svc)

	if svc.Streak() != 1 {
		t.Errorf("expected streak 1, got %d", svc.Streak())
	}
	if svc.BestStreak() != 2 {
		t.Errorf("expected best streak 2, got %d", svc.BestStreak())
	}
}

func TestReconcileDay_FirstRunLeavesStreakAlone(t *testing.T) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	// A legacy document with a streak but no session date.
	state := storage.DefaultState("")
	state.Streak = 4
	state.BestStreak = 4
	if err := store.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	svc, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if svc.Streak() != 4 {
		t.Errorf("streak reset on first reconcile without a previous date: %d", svc.Streak())
	}
}

func TestHistoryPruning(t *testing.T) {
	svc, clk := createTestService(t)
	day1 := clk.Now().Format(storage.DateFormat)

	reachGoal(t, svc)
	clk.AdvanceDays(1)
	svc.ReconcileDay()

	if svc.State().HistoryFor(day1) == nil {
		t.Fatal("setup: day 1 not archived")
	}

	clk.AdvanceDays(31)
	svc.ReconcileDay()

	if svc.State().HistoryFor(day1) != nil {
		t.Error("31-day-old record not pruned from history")
	}
	for _, date := range svc.State().WeeklyProgress {
		if date == day1 {
			t.Error("31-day-old date not pruned from weekly progress")
		}
	}
}

func TestReconcileDay_Persists(t *testing.T) {
	svc, clk := createTestService(t)

	reachGoal(t, svc)
	clk.AdvanceDays(1)
	svc.ReconcileDay()

	// A fresh service over the same store sees the rolled-over state.
	reloaded, err := NewWithClock(svc.store, clk.Now)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.TodayXP() != 0 {
		t.Errorf("persisted todayXP not reset: %d", reloaded.TodayXP())
	}
	if len(reloaded.State().DailyHistory) != 1 {
		t.Errorf("archive not persisted: %d records", len(reloaded.State().DailyHistory))
	}
}
