package engine

import (
	"strings"

	"farflife/internal/storage"
)

// validateItem checks the shared name/XP rules for tasks and quests.
func validateItem(name string, xp int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if xp < 1 {
		return &ValidationError{Field: "xp", Reason: "must be at least 1"}
	}
	return nil
}

// AddDailyTask appends a new once-per-day task with a fresh id.
func (s *Service) AddDailyTask(name string, xp int) (*storage.DailyTask, error) {
	if err := validateItem(name, xp); err != nil {
		return nil, err
	}
	s.ReconcileDay()

	task := storage.DailyTask{
		ID:   storage.NewID("de"),
		Name: strings.TrimSpace(name),
		XP:   xp,
	}
	s.state.DailyEssentials = append(s.state.DailyEssentials, task)
	s.persist()
	return &s.state.DailyEssentials[len(s.state.DailyEssentials)-1], nil
}

// UpdateDailyTask renames or re-prices an existing task. Completion state
// and XP already banked today are left alone.
func (s *Service) UpdateDailyTask(id, name string, xp int) error {
	if err := validateItem(name, xp); err != nil {
		return err
	}
	task := s.state.FindDailyTask(id)
	if task == nil {
		return &NotFoundError{Kind: "daily essential", ID: id}
	}

	task.Name = strings.TrimSpace(name)
	task.XP = xp
	s.persist()
	return nil
}

// DeleteDailyTask removes a task by id. XP it already earned today stays
// banked; nothing is recomputed retroactively.
func (s *Service) DeleteDailyTask(id string) error {
	for i, task := range s.state.DailyEssentials {
		if task.ID == id {
			s.state.DailyEssentials = append(s.state.DailyEssentials[:i], s.state.DailyEssentials[i+1:]...)
			s.persist()
			return nil
		}
	}
	return &NotFoundError{Kind: "daily essential", ID: id}
}

// AddQuest appends a new repeatable quest with a fresh id.
func (s *Service) AddQuest(name string, xp int) (*storage.Quest, error) {
	if err := validateItem(name, xp); err != nil {
		return nil, err
	}
	s.ReconcileDay()

	quest := storage.Quest{
		ID:   storage.NewID("q"),
		Name: strings.TrimSpace(name),
		XP:   xp,
	}
	s.state.Quests = append(s.state.Quests, quest)
	s.persist()
	return &s.state.Quests[len(s.state.Quests)-1], nil
}

// UpdateQuest renames or re-prices an existing quest.
func (s *Service) UpdateQuest(id, name string, xp int) error {
	if err := validateItem(name, xp); err != nil {
		return err
	}
	quest := s.state.FindQuest(id)
	if quest == nil {
		return &NotFoundError{Kind: "quest", ID: id}
	}

	quest.Name = strings.TrimSpace(name)
	quest.XP = xp
	s.persist()
	return nil
}

// DeleteQuest removes a quest by id. Repetitions already banked today are
// not revoked.
func (s *Service) DeleteQuest(id string) error {
	for i, quest := range s.state.Quests {
		if quest.ID == id {
			s.state.Quests = append(s.state.Quests[:i], s.state.Quests[i+1:]...)
			s.persist()
			return nil
		}
	}
	return &NotFoundError{Kind: "quest", ID: id}
}
