package storage

// DateFormat is the canonical YYYY-MM-DD layout used for all date keys.
const DateFormat = "2006-01-02"

// DailyTask is a task completable at most once per day.
type DailyTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	XP        int    `json:"xp"`
	Completed bool   `json:"completed"`
}

// Quest is a repeatable task completable any number of times per day.
type Quest struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	XP             int    `json:"xp"`
	CompletedCount int    `json:"completed_count"`
}

// QuestCount records how many times a named quest was completed on a day.
type QuestCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayRecord is the immutable snapshot of a closed day. The in-progress day
// never has a record; its numbers live on AppState directly.
type DayRecord struct {
	Date   string       `json:"date"`
	XP     int          `json:"xp"`
	Quests []QuestCount `json:"quests"`
}

// AppState is the single persisted aggregate for the whole application.
type AppState struct {
	DailyGoal            int         `json:"daily_goal"`
	Streak               int         `json:"streak"`
	BestStreak           int         `json:"best_streak"`
	LastCompletedDate    string      `json:"last_completed_date,omitempty"`
	TotalDaysCompleted   int         `json:"total_days_completed"`
	TotalXPEarned        int         `json:"total_xp_earned"`
	TotalQuestsCompleted int         `json:"total_quests_completed"`
	DailyEssentials      []DailyTask `json:"daily_essentials"`
	Quests               []Quest     `json:"quests"`
	WeeklyProgress       []string    `json:"weekly_progress"`
	DailyHistory         []DayRecord `json:"daily_history"`
	TodayXP              int         `json:"today_xp"`
	TodayDate            string      `json:"today_date,omitempty"`
	CelebratedToday      bool        `json:"celebrated_today"`
}

// GoalReachedOn reports whether the daily goal was met on the given date.
func (s *AppState) GoalReachedOn(date string) bool {
	for _, d := range s.WeeklyProgress {
		if d == date {
			return true
		}
	}
	return false
}

// FindDailyTask returns the daily task with the given id, or nil.
func (s *AppState) FindDailyTask(id string) *DailyTask {
	for i := range s.DailyEssentials {
		if s.DailyEssentials[i].ID == id {
			return &s.DailyEssentials[i]
		}
	}
	return nil
}

// FindQuest returns the quest with the given id, or nil.
func (s *AppState) FindQuest(id string) *Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return &s.Quests[i]
		}
	}
	return nil
}

// HistoryFor returns the archived record for the given date, or nil.
func (s *AppState) HistoryFor(date string) *DayRecord {
	for i := range s.DailyHistory {
		if s.DailyHistory[i].Date == date {
			return &s.DailyHistory[i]
		}
	}
	return nil
}

// ActiveQuestCounts lists the quests completed at least once today.
func (s *AppState) ActiveQuestCounts() []QuestCount {
	var counts []QuestCount
	for _, q := range s.Quests {
		if q.CompletedCount > 0 {
			counts = append(counts, QuestCount{Name: q.Name, Count: q.CompletedCount})
		}
	}
	return counts
}

// Clone returns a deep copy of the state. Used by callers that hand state to
// concurrent renderers while the original keeps being mutated. Slices keep
// their nil-vs-empty distinction so a clone compares equal to its source.
func (s *AppState) Clone() *AppState {
	out := *s
	out.DailyEssentials = cloneSlice(s.DailyEssentials)
	out.Quests = cloneSlice(s.Quests)
	out.WeeklyProgress = cloneSlice(s.WeeklyProgress)
	if s.DailyHistory != nil {
		out.DailyHistory = make([]DayRecord, len(s.DailyHistory))
		for i, rec := range s.DailyHistory {
			out.DailyHistory[i] = rec
			out.DailyHistory[i].Quests = cloneSlice(rec.Quests)
		}
	}
	return &out
}

// cloneSlice copies a slice, preserving nil and empty as-is.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// DefaultState returns the first-run state, seeded with starter tasks and
// today's date already set.
func DefaultState(today string) *AppState {
	return &AppState{
		DailyGoal: 100,
		DailyEssentials: []DailyTask{
			{ID: "de1", Name: "Drink 5 Bottles of Water", XP: 10},
			{ID: "de2", Name: "Exercise for 30 Minutes", XP: 20},
			{ID: "de3", Name: "Read for 15 Minutes", XP: 15},
		},
		Quests: []Quest{
			{ID: "q1", Name: "Learn a New Language", XP: 50},
			{ID: "q2", Name: "Practice an Instrument", XP: 40},
		},
		WeeklyProgress: []string{},
		DailyHistory:   []DayRecord{},
		TodayDate:      today,
	}
}
