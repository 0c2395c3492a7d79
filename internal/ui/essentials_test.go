package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEssentialsPaneView_Empty(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	clearItems(t, svc)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(40, 20)
	pane.SetFocused(true)

	output := pane.View()
	if !strings.Contains(output, "No essentials yet") {
		t.Errorf("empty view missing placeholder, got:\n%s", output)
	}
}

func TestEssentialsPaneView_SeededItems(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	output := pane.View()
	if !strings.Contains(output, "ESSENTIALS") {
		t.Errorf("view missing title, got:\n%s", output)
	}
	if !strings.Contains(output, "Drink 5 Bottles of Water") {
		t.Errorf("view missing seeded item, got:\n%s", output)
	}
	if !strings.Contains(output, "+10") {
		t.Errorf("view missing XP badge, got:\n%s", output)
	}
	if !strings.Contains(output, "0/3 done") {
		t.Errorf("view missing stats line, got:\n%s", output)
	}
}

func TestEssentialsPane_CompleteKey(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	cmd := pane.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("complete key returned no command")
	}
	msg, ok := cmd().(progressMsg)
	if !ok {
		t.Fatalf("expected progressMsg, got %T", cmd())
	}
	if msg.err != nil {
		t.Fatalf("complete failed: %v", msg.err)
	}

	if svc.TodayXP() != 10 {
		t.Errorf("TodayXP = %d, want 10", svc.TodayXP())
	}
	if !svc.DailyEssentials()[0].Completed {
		t.Error("first essential not marked completed")
	}

	output := pane.View()
	if !strings.Contains(output, "1/3 done") {
		t.Errorf("stats not updated, got:\n%s", output)
	}
}

func TestEssentialsPane_CompleteTwiceIsNoOp(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("d"))()
	pane.Update(keyMsg("d"))()

	if svc.TodayXP() != 10 {
		t.Errorf("TodayXP = %d, want 10 after double complete", svc.TodayXP())
	}
}

func TestEssentialsPane_AddForm(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("a"))
	if !pane.IsEditing() {
		t.Fatal("add key did not enter form mode")
	}

	pane.input.SetValue("Stretch")
	pane.Update(keyMsg("enter"))
	if pane.step != stepXP {
		t.Fatalf("form did not advance to XP step, step = %d", pane.step)
	}

	pane.input.SetValue("15")
	cmd := pane.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("XP confirm returned no command")
	}
	msg, ok := cmd().(itemsChangedMsg)
	if !ok {
		t.Fatalf("expected itemsChangedMsg, got %T", cmd())
	}
	if msg.err != nil {
		t.Fatalf("add failed: %v", msg.err)
	}
	if pane.IsEditing() {
		t.Error("form mode not cleared after save")
	}

	items := svc.DailyEssentials()
	last := items[len(items)-1]
	if last.Name != "Stretch" || last.XP != 15 {
		t.Errorf("added item = %q/%d, want Stretch/15", last.Name, last.XP)
	}
}

func TestEssentialsPane_AddFormRejectsBadXP(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	before := len(svc.DailyEssentials())

	pane.Update(keyMsg("a"))
	pane.input.SetValue("Stretch")
	pane.Update(keyMsg("enter"))
	pane.input.SetValue("zero")
	cmd := pane.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("invalid XP should keep the form open")
	}
	if !pane.IsEditing() {
		t.Error("form closed despite invalid XP")
	}
	if len(svc.DailyEssentials()) != before {
		t.Error("item added despite invalid XP")
	}
}

func TestEssentialsPane_EditForm(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("e"))
	if !pane.IsEditing() {
		t.Fatal("edit key did not enter form mode")
	}
	if got := pane.input.Value(); got != "Drink 5 Bottles of Water" {
		t.Fatalf("edit form not prefilled, got %q", got)
	}

	pane.input.SetValue("Hydrate")
	pane.Update(keyMsg("enter"))
	pane.input.SetValue("12")
	cmd := pane.Update(keyMsg("enter"))
	if msg := cmd().(itemsChangedMsg); msg.err != nil {
		t.Fatalf("edit failed: %v", msg.err)
	}

	item := svc.DailyEssentials()[0]
	if item.Name != "Hydrate" || item.XP != 12 {
		t.Errorf("edited item = %q/%d, want Hydrate/12", item.Name, item.XP)
	}
}

func TestEssentialsPane_Delete(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	before := len(svc.DailyEssentials())
	cmd := pane.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("delete key returned no command")
	}
	if msg := cmd().(itemsChangedMsg); msg.err != nil {
		t.Fatalf("delete failed: %v", msg.err)
	}
	if got := len(svc.DailyEssentials()); got != before-1 {
		t.Errorf("items after delete = %d, want %d", got, before-1)
	}
}

func TestEssentialsPane_CancelForm(t *testing.T) {
	setupTest(t)
	svc := createTestService(t)
	styles := createTestStyles()

	pane := NewEssentialsPane(svc, styles)
	pane.SetSize(50, 20)
	pane.SetFocused(true)

	pane.Update(keyMsg("a"))
	pane.input.SetValue("Abandoned")
	pane.Update(keyMsg("esc"))
	if pane.IsEditing() {
		t.Error("cancel did not leave form mode")
	}
	for _, item := range svc.DailyEssentials() {
		if item.Name == "Abandoned" {
			t.Error("canceled item was added")
		}
	}
}
