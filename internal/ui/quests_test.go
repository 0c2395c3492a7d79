package ui

import (
	"strings"
	"testing"
)

func TestQuestsPaneView_SeededItems(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewQuestsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	output := pane.View()
	if !strings.Contains(output, "QUESTS") {
		t.Errorf("view missing title, got:\n%s", output)
	}
	if !strings.Contains(output, "Learn a New Language") {
		t.Errorf("view missing seeded quest, got:\n%s", output)
	}
	if !strings.Contains(output, "+50") {
		t.Errorf("view missing XP badge, got:\n%s", output)
	}
	if !strings.Contains(output, "0 completed today") {
		t.Errorf("view missing stats line, got:\n%s", output)
	}
}

func TestQuestsPane_CompleteIsRepeatable(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewQuestsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	// First completion: 50 XP, goal not yet reached
	msg := pane.Update(keyMsg("d"))().(progressMsg)
	if msg.err != nil {
		t.Fatalf("complete failed: %v", msg.err)
	}
	if msg.result.GoalReached {
		t.Error("goal reported reached at 50/100 XP")
	}
	if svc.TodayXP() != 50 {
		t.Errorf("TodayXP = %d, want 50", svc.TodayXP())
	}

	// Second completion crosses the 100 XP goal
	msg = pane.Update(keyMsg("d"))().(progressMsg)
	if msg.err != nil {
		t.Fatalf("complete failed: %v", msg.err)
	}
	if !msg.result.GoalReached || !msg.result.Celebrate {
		t.Errorf("expected goal crossing with celebration, got %+v", msg.result)
	}
	if svc.TodayXP() != 100 {
		t.Errorf("TodayXP = %d, want 100", svc.TodayXP())
	}

	output := pane.View()
	if !strings.Contains(output, "×2") {
		t.Errorf("view missing repeat counter, got:\n%s", output)
	}
	if !strings.Contains(output, "2 completed today") {
		t.Errorf("stats not updated, got:\n%s", output)
	}
	if pane.CompletedToday() != 2 {
		t.Errorf("CompletedToday = %d, want 2", pane.CompletedToday())
	}
}

func TestQuestsPane_AddForm(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewQuestsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("a"))
	pane.input.SetValue("Meditate")
	pane.Update(keyMsg("enter"))
	pane.input.SetValue("25")
	cmd := pane.Update(keyMsg("enter"))
	if msg := cmd().(itemsChangedMsg); msg.err != nil {
		t.Fatalf("add failed: %v", msg.err)
	}

	quests := svc.Quests()
	last := quests[len(quests)-1]
	if last.Name != "Meditate" || last.XP != 25 {
		t.Errorf("added quest = %q/%d, want Meditate/25", last.Name, last.XP)
	}
}

func TestQuestsPane_DeleteKeepsBankedXP(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewQuestsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("d"))()
	before := len(svc.Quests())

	if msg := pane.Update(keyMsg("x"))().(itemsChangedMsg); msg.err != nil {
		t.Fatalf("delete failed: %v", msg.err)
	}
	if got := len(svc.Quests()); got != before-1 {
		t.Errorf("quests after delete = %d, want %d", got, before-1)
	}
	if svc.TodayXP() != 50 {
		t.Errorf("banked XP revoked by delete: TodayXP = %d, want 50", svc.TodayXP())
	}
}
