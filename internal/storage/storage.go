// Package storage persists the FarfLife application state as a single JSON
// document in the data directory. Loading is forward-compatible: documents
// written by older schema versions are merged over defaults, and corrupted
// documents are recovered from backup or reset rather than crashing.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/xid"

	"farflife/internal/fsutil"
)

const (
	// DataFile is the name of the state document inside the data directory.
	DataFile = "farflife.json"

	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600
)

// Storage handles reading and writing the state document.
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

// New creates a Storage rooted at the given data directory, creating the
// directory if needed.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Storage{dataDir: dataDir, now: time.Now}, nil
}

// SetNowFunc overrides the clock used by time-dependent operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current date key according to the storage clock.
func (s *Storage) Today() string {
	return s.Now().Format(DateFormat)
}

// DataDir returns the path to the data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

// Path returns the full path to the state document.
func (s *Storage) Path() string {
	return filepath.Join(s.dataDir, DataFile)
}

// NewID generates a unique, stable identifier with the given prefix.
func NewID(prefix string) string {
	return prefix + "_" + xid.New().String()
}

// Load reads the state document, merging it over schema defaults so that
// fields added after the document was written are backfilled. A missing
// document yields the first-run default state. An unreadable or corrupt
// document is recovered from the .bak copy when possible, otherwise moved
// aside and replaced with defaults; either way Load returns a usable state
// along with a non-nil error describing what happened.
func (s *Storage) Load() (*AppState, error) {
	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			state := DefaultState(s.Today())
			if saveErr := s.Save(state); saveErr != nil {
				return state, saveErr
			}
			return state, nil
		}
		return s.recover(fmt.Errorf("read %s: %w", DataFile, err))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recover(fmt.Errorf("%s is empty", DataFile))
	}

	state, err := decodeState(data, s.Today())
	if err != nil {
		return s.recover(fmt.Errorf("parse %s: %w", DataFile, err))
	}
	return state, nil
}

// Save writes the state document atomically, keeping a best-effort backup of
// the previous contents.
func (s *Storage) Save(state *AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", DataFile, err)
	}

	path := s.Path()
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", DataFile, err)
	}
	return nil
}

// Reset discards the persisted document and writes fresh defaults with
// today's date pre-populated. It returns the new state.
func (s *Storage) Reset() (*AppState, error) {
	state := DefaultState(s.Today())
	if err := s.Save(state); err != nil {
		return state, err
	}
	return state, nil
}

// recover attempts to restore a usable state after a failed load: first from
// the .bak copy, then by moving the broken document aside and resetting to
// defaults. The returned error carries the cause for the caller to surface.
func (s *Storage) recover(cause error) (*AppState, error) {
	path := s.Path()

	if bakData, err := os.ReadFile(path + ".bak"); err == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if state, err := decodeState(bakData, s.Today()); err == nil {
			s.quarantine(path)
			_ = s.Save(state)
			return state, fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), DataFile)
		}
	}

	s.quarantine(path)
	state := DefaultState(s.Today())
	_ = s.Save(state)
	return state, fmt.Errorf("%s (reset to defaults; original moved aside)", cause.Error())
}

// quarantine preserves a broken document for manual inspection, best effort.
func (s *Storage) quarantine(path string) {
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
}

// decodeState unmarshals a document over schema defaults. Fields present in
// the document win; fields the document predates keep their default values.
func decodeState(data []byte, today string) (*AppState, error) {
	state := DefaultState(today)
	state.TodayDate = "" // only a genuinely fresh state starts with today pre-set
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	normalize(state)
	return state, nil
}

// normalize repairs documents written by older schema versions.
func normalize(state *AppState) {
	if state.DailyEssentials == nil {
		state.DailyEssentials = []DailyTask{}
	}
	if state.Quests == nil {
		state.Quests = []Quest{}
	}
	if state.WeeklyProgress == nil {
		state.WeeklyProgress = []string{}
	}
	if state.DailyHistory == nil {
		state.DailyHistory = []DayRecord{}
	}
	// Documents older than the best-streak field backfill it from the
	// current streak.
	if state.BestStreak < state.Streak {
		state.BestStreak = state.Streak
	}
	if state.DailyGoal < 10 {
		state.DailyGoal = DefaultState("").DailyGoal
	}
}
