package tracker

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

// DayStore reads and writes per-date notes, moods, and task lists. Every
// call goes straight to the adapter; dates are fully independent.
type DayStore struct {
	kv  store.KV
	log *zap.Logger
}

// NewDayStore returns a DayStore over kv.
func NewDayStore(kv store.KV, log *zap.Logger) *DayStore {
	return &DayStore{kv: kv, log: logging.OrNop(log)}
}

// Note returns the note for day, or "" if none was written.
func (s *DayStore) Note(day time.Time) (string, error) {
	v, _, err := s.kv.Load(noteKey(model.FormatDate(day)))
	return v, err
}

// SetNote replaces the note for day.
func (s *DayStore) SetNote(day time.Time, text string) error {
	key := noteKey(model.FormatDate(day))
	if err := s.kv.Save(key, text); err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	s.log.Debug("persisted", zap.String("key", key), zap.Int("bytes", len(text)))
	return nil
}

// Mood returns the mood recorded for day. ok is false when none is set or
// the stored tag is not a known mood.
func (s *DayStore) Mood(day time.Time) (model.Mood, bool, error) {
	key := moodKey(model.FormatDate(day))
	raw, ok, err := s.kv.Load(key)
	if err != nil || !ok || raw == "" {
		return "", false, err
	}
	m := model.Mood(strings.TrimSpace(raw))
	if !m.Valid() {
		s.log.Warn("ignoring unknown stored mood", zap.String("key", key), zap.String("mood", raw))
		return "", false, nil
	}
	return m, true, nil
}

// SetMood records the mood for day.
func (s *DayStore) SetMood(day time.Time, m model.Mood) error {
	if !m.Valid() {
		return fmt.Errorf("%w: unknown mood %q", ErrValidation, m)
	}
	key := moodKey(model.FormatDate(day))
	if err := s.kv.Save(key, string(m)); err != nil {
		return fmt.Errorf("saving mood: %w", err)
	}
	s.log.Debug("persisted", zap.String("key", key), zap.String("mood", string(m)))
	return nil
}

// Tasks returns the task list for day in insertion order.
func (s *DayStore) Tasks(day time.Time) ([]model.Task, error) {
	tasks, err := loadJSON[[]model.Task](s.kv, tasksKey(model.FormatDate(day)), s.log)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return tasks, nil
}

// AddTask appends a new, incomplete task to day's list.
func (s *DayStore) AddTask(day time.Time, text string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, fmt.Errorf("%w: task text is empty", ErrValidation)
	}

	tasks, err := s.Tasks(day)
	if err != nil {
		return model.Task{}, err
	}
	t := model.Task{ID: newID(), Text: text}
	if err := s.saveTasks(day, append(tasks, t)); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// ToggleTask flips the completed flag of a task and returns it.
func (s *DayStore) ToggleTask(day time.Time, taskID string) (model.Task, error) {
	tasks, err := s.Tasks(day)
	if err != nil {
		return model.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
			if err := s.saveTasks(day, tasks); err != nil {
				return model.Task{}, err
			}
			return tasks[i], nil
		}
	}
	return model.Task{}, fmt.Errorf("task %q on %s: %w", taskID, model.FormatDate(day), ErrNotFound)
}

// RemoveTask deletes a task from day's list. Removing an unknown id is a
// no-op.
func (s *DayStore) RemoveTask(day time.Time, taskID string) error {
	tasks, err := s.Tasks(day)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			return s.saveTasks(day, append(tasks[:i], tasks[i+1:]...))
		}
	}
	return nil
}

// Annotation returns everything recorded for day.
func (s *DayStore) Annotation(day time.Time) (model.DayAnnotation, error) {
	a := model.DayAnnotation{Date: model.FormatDate(day)}

	note, err := s.Note(day)
	if err != nil {
		return a, err
	}
	a.Note = note

	if m, ok, err := s.Mood(day); err != nil {
		return a, err
	} else if ok {
		a.Mood = m
	}

	if a.Tasks, err = s.Tasks(day); err != nil {
		return a, err
	}
	return a, nil
}

func (s *DayStore) saveTasks(day time.Time, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	if err := saveJSON(s.kv, tasksKey(model.FormatDate(day)), tasks, s.log); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
