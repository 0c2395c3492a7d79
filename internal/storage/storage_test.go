package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"
)

// createTestStorage creates a Storage instance with a temporary directory
// and a fixed clock.
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	store.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	})
	return store
}

func TestLoad_FirstRun(t *testing.T) {
	store := createTestStorage(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if state.DailyGoal != 100 {
		t.Errorf("DailyGoal = %d, want 100", state.DailyGoal)
	}
	if len(state.DailyEssentials) != 3 {
		t.Errorf("len(DailyEssentials) = %d, want 3 seed tasks", len(state.DailyEssentials))
	}
	if len(state.Quests) != 2 {
		t.Errorf("len(Quests) = %d, want 2 seed quests", len(state.Quests))
	}
	if state.TodayDate != "2026-03-10" {
		t.Errorf("TodayDate = %q, want %q", state.TodayDate, "2026-03-10")
	}

	// First run writes the document so the next load finds it.
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("expected state document after first load: %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := createTestStorage(t)

	state, _ := store.Load()
	state.TodayXP = 75
	state.Streak = 4
	state.BestStreak = 9
	state.WeeklyProgress = []string{"2026-03-08", "2026-03-09"}
	state.DailyHistory = []DayRecord{
		{Date: "2026-03-09", XP: 120, Quests: []QuestCount{{Name: "Run", Count: 2}}},
	}
	state.DailyEssentials[0].Completed = true
	state.Quests[1].CompletedCount = 3

	if err := store.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("round-trip mismatch:\nsaved  %+v\nloaded %+v", state, loaded)
	}
}

func TestLoad_LegacyDocumentBackfill(t *testing.T) {
	store := createTestStorage(t)

	// A document written before daily_history and best_streak existed.
	legacy := map[string]any{
		"daily_goal":       150,
		"streak":           6,
		"today_xp":         40,
		"today_date":       "2026-03-10",
		"daily_essentials": []map[string]any{{"id": "a", "name": "Stretch", "xp": 5}},
		"quests":           []map[string]any{},
		"weekly_progress":  []string{"2026-03-09"},
	}
	data, _ := json.Marshal(legacy)
	if err := os.WriteFile(store.Path(), data, 0600); err != nil {
		t.Fatalf("write legacy document: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if state.BestStreak != 6 {
		t.Errorf("BestStreak = %d, want backfill from streak (6)", state.BestStreak)
	}
	if state.DailyHistory == nil || len(state.DailyHistory) != 0 {
		t.Errorf("DailyHistory = %#v, want empty non-nil slice", state.DailyHistory)
	}
	if state.DailyGoal != 150 {
		t.Errorf("DailyGoal = %d, want stored value 150", state.DailyGoal)
	}
	if len(state.DailyEssentials) != 1 || state.DailyEssentials[0].Name != "Stretch" {
		t.Errorf("DailyEssentials = %#v, want the stored task, not seeds", state.DailyEssentials)
	}
}

func TestLoad_EmptyDocumentResets(t *testing.T) {
	store := createTestStorage(t)

	if err := os.WriteFile(store.Path(), []byte("   \n"), 0600); err != nil {
		t.Fatalf("write empty document: %v", err)
	}

	state, err := store.Load()
	if err == nil {
		t.Fatal("Load() expected an error describing the recovery")
	}
	if state == nil {
		t.Fatal("Load() must always return a usable state")
	}
	if state.DailyGoal != 100 {
		t.Errorf("DailyGoal = %d, want defaults after reset", state.DailyGoal)
	}
}

func TestLoad_CorruptDocumentRecoversFromBackup(t *testing.T) {
	store := createTestStorage(t)

	// Establish a good document and its .bak.
	state, _ := store.Load()
	state.TotalXPEarned = 777
	if err := store.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(state); err != nil { // second save creates the .bak
		t.Fatalf("Save() error = %v", err)
	}

	// Corrupt the main document.
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("corrupt document: %v", err)
	}

	loaded, err := store.Load()
	if err == nil {
		t.Fatal("Load() expected an error describing the recovery")
	}
	if loaded.TotalXPEarned != 777 {
		t.Errorf("TotalXPEarned = %d, want 777 recovered from backup", loaded.TotalXPEarned)
	}
}

func TestReset(t *testing.T) {
	store := createTestStorage(t)

	state, _ := store.Load()
	state.Streak = 12
	state.TotalXPEarned = 5000
	store.Save(state)

	fresh, err := store.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if fresh.Streak != 0 || fresh.TotalXPEarned != 0 {
		t.Errorf("Reset() state = %+v, want zeroed counters", fresh)
	}
	if fresh.TodayDate != "2026-03-10" {
		t.Errorf("TodayDate = %q, want today's date pre-populated", fresh.TodayDate)
	}

	loaded, _ := store.Load()
	if loaded.Streak != 0 {
		t.Errorf("persisted state Streak = %d, want 0 after reset", loaded.Streak)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID("t")
		if id == "" {
			t.Fatal("NewID() returned empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestClone_Independent(t *testing.T) {
	store := createTestStorage(t)
	state, _ := store.Load()
	state.DailyHistory = []DayRecord{{Date: "2026-03-09", XP: 50}}

	clone := state.Clone()
	clone.DailyEssentials[0].Completed = true
	clone.DailyHistory[0].XP = 999
	clone.WeeklyProgress = append(clone.WeeklyProgress, "2026-03-10")

	if state.DailyEssentials[0].Completed {
		t.Error("mutating clone changed the original's tasks")
	}
	if state.DailyHistory[0].XP != 50 {
		t.Error("mutating clone changed the original's history")
	}
	if len(state.WeeklyProgress) != 0 {
		t.Error("mutating clone changed the original's weekly progress")
	}
}

func TestClone_EqualsSource(t *testing.T) {
	store := createTestStorage(t)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// A fresh load carries empty (non-nil) slices; cloning must not turn
	// them into nil or the copy stops being equal to its source.
	if !reflect.DeepEqual(state, state.Clone()) {
		t.Errorf("Clone() of a fresh state differs from its source:\n%+v\nvs\n%+v", state, state.Clone())
	}

	state.DailyHistory = []DayRecord{{Date: "2026-03-09", XP: 50, Quests: []QuestCount{}}}
	state.WeeklyProgress = append(state.WeeklyProgress, "2026-03-09")
	if !reflect.DeepEqual(state, state.Clone()) {
		t.Error("Clone() of a populated state differs from its source")
	}

	var zero AppState
	if !reflect.DeepEqual(&zero, zero.Clone()) {
		t.Error("Clone() of a zero state differs from its source")
	}
}

func TestStorage_PermissionsArePrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions are not meaningful on Windows")
	}

	dataDir := t.TempDir()
	store, err := New(dataDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dataDir, DataFile))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm()&0o077 != 0 {
		t.Fatalf("%s permissions = %o, want no group/other bits", DataFile, info.Mode().Perm())
	}
}
