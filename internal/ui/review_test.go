package ui

import (
	"strings"
	"testing"
)

func TestReviewPaneView(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewReviewPane(svc, styles)
	pane.SetSize(44, 24)
	pane.SetFocused(true)

	output := pane.View()
	if !strings.Contains(output, "REVIEW") {
		t.Errorf("view missing title, got:\n%s", output)
	}
	if !strings.Contains(output, "Goal days") {
		t.Errorf("view missing goal days line, got:\n%s", output)
	}
	if !strings.Contains(output, "0/7") {
		t.Errorf("view missing week count, got:\n%s", output)
	}
	if !strings.Contains(output, "Lifetime") {
		t.Errorf("view missing lifetime section, got:\n%s", output)
	}
}

func TestReviewPaneView_AfterGoalReached(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	// Reach the 100 XP goal with two quest completions
	quest := svc.Quests()[0]
	svc.CompleteQuest(quest.ID)
	svc.CompleteQuest(quest.ID)

	pane := NewReviewPane(svc, styles)
	pane.SetSize(44, 24)
	pane.SetFocused(true)

	output := pane.View()
	if !strings.Contains(output, "1/7") {
		t.Errorf("goal day not counted, got:\n%s", output)
	}
	if !strings.Contains(output, "Week XP") {
		t.Errorf("view missing week XP line, got:\n%s", output)
	}
	if !strings.Contains(output, "Top quests") {
		t.Errorf("view missing top quests section, got:\n%s", output)
	}
	if !strings.Contains(output, "Learn a New Language") {
		t.Errorf("top quest name not shown, got:\n%s", output)
	}
}
