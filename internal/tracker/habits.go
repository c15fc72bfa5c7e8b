package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

// HabitStore owns the habit collection for one session. It is not safe for
// concurrent use.
type HabitStore struct {
	kv     store.KV
	clock  clock.Clock
	log    *zap.Logger
	habits []model.Habit
}

// NewHabitStore loads the persisted habits. Missing or unreadable data
// yields an empty collection; only adapter failures are returned.
func NewHabitStore(kv store.KV, c clock.Clock, log *zap.Logger) (*HabitStore, error) {
	log = logging.OrNop(log)
	if c == nil {
		c = clock.System{}
	}

	habits, err := loadJSON[[]model.Habit](kv, HabitsKey, log)
	if err != nil {
		return nil, fmt.Errorf("loading habits: %w", err)
	}

	for i := range habits {
		dates, dropped := normalizeDates(habits[i].CompletedDates)
		if dropped > 0 {
			log.Warn("dropped invalid or duplicate completion dates",
				zap.String("habit", habits[i].ID),
				zap.Int("dropped", dropped),
			)
		}
		habits[i].CompletedDates = dates
	}

	log.Debug("habits loaded", zap.Int("count", len(habits)))
	return &HabitStore{kv: kv, clock: c, log: log, habits: habits}, nil
}

// List returns every habit in insertion order.
func (s *HabitStore) List() []model.Habit {
	out := make([]model.Habit, len(s.habits))
	for i, h := range s.habits {
		out[i] = h.Clone()
	}
	return out
}

// Get returns the habit with the given id.
func (s *HabitStore) Get(id string) (model.Habit, error) {
	i := s.index(id)
	if i < 0 {
		return model.Habit{}, fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}
	return s.habits[i].Clone(), nil
}

// Add creates a habit with an empty completion set.
func (s *HabitStore) Add(name, category, color string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, fmt.Errorf("%w: habit name is empty", ErrValidation)
	}

	h := model.Habit{
		ID:             newID(),
		Name:           name,
		Category:       strings.TrimSpace(category),
		Color:          color,
		CompletedDates: []string{},
		CreatedAt:      s.clock.Now(),
	}

	next := append(s.snapshot(), h)
	if err := s.commit(next); err != nil {
		return model.Habit{}, err
	}
	s.log.Info("habit added", zap.String("id", h.ID), zap.String("name", h.Name))
	return h.Clone(), nil
}

// Remove deletes the habit with the given id. Removing an unknown id is a
// no-op.
func (s *HabitStore) Remove(id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}

	next := make([]model.Habit, 0, len(s.habits)-1)
	next = append(next, s.habits[:i]...)
	next = append(next, s.habits[i+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Info("habit removed", zap.String("id", id))
	return nil
}

// ToggleCompletion flips the completion mark for the calendar day of day.
// It reports whether the habit is completed on that day afterwards.
func (s *HabitStore) ToggleCompletion(id string, day time.Time) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}

	date := model.FormatDate(day)
	next := s.snapshot()
	h := next[i].Clone()
	var done bool
	h.CompletedDates, done = toggleDate(h.CompletedDates, date)
	next[i] = h

	if err := s.commit(next); err != nil {
		return false, err
	}
	s.log.Debug("completion toggled",
		zap.String("id", id),
		zap.String("date", date),
		zap.Bool("completed", done),
	)
	return done, nil
}

// Update merges the non-nil fields of patch into the habit.
func (s *HabitStore) Update(id string, patch model.HabitPatch) (model.Habit, error) {
	i := s.index(id)
	if i < 0 {
		return model.Habit{}, fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}

	h := s.habits[i].Clone()
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return model.Habit{}, fmt.Errorf("%w: habit name is empty", ErrValidation)
		}
		h.Name = name
	}
	if patch.Category != nil {
		h.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Color != nil {
		h.Color = *patch.Color
	}

	next := s.snapshot()
	next[i] = h
	if err := s.commit(next); err != nil {
		return model.Habit{}, err
	}
	return h.Clone(), nil
}

func (s *HabitStore) index(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// snapshot returns a shallow copy of the collection that can be modified
// without touching the committed state.
func (s *HabitStore) snapshot() []model.Habit {
	return append(make([]model.Habit, 0, len(s.habits)+1), s.habits...)
}

// commit persists next and only then makes it the current collection.
func (s *HabitStore) commit(next []model.Habit) error {
	if err := saveJSON(s.kv, HabitsKey, next, s.log); err != nil {
		return fmt.Errorf("saving habits: %w", err)
	}
	s.habits = next
	return nil
}

// toggleDate removes date from the sorted slice if present, otherwise
// inserts it in order. The input slice is never modified.
func toggleDate(dates []string, date string) ([]string, bool) {
	i := sort.SearchStrings(dates, date)
	out := make([]string, 0, len(dates)+1)
	out = append(out, dates[:i]...)
	if i < len(dates) && dates[i] == date {
		return append(out, dates[i+1:]...), false
	}
	out = append(out, date)
	return append(out, dates[i:]...), true
}

// normalizeDates sorts, deduplicates, and drops malformed dates. It returns
// the cleaned slice and how many entries were removed.
func normalizeDates(dates []string) ([]string, int) {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if model.ValidDate(d) {
			out = append(out, d)
		}
	}
	sort.Strings(out)

	n := 0
	for i, d := range out {
		if i > 0 && d == out[n-1] {
			continue
		}
		out[n] = d
		n++
	}
	return out[:n], len(dates) - n
}
