package tracker

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

// GoalStore owns the goal collection for one session. It is not safe for
// concurrent use.
type GoalStore struct {
	kv    store.KV
	clock clock.Clock
	log   *zap.Logger
	goals []model.Goal
}

// NewGoalStore loads the persisted goals. Missing or unreadable data yields
// an empty collection; only adapter failures are returned.
func NewGoalStore(kv store.KV, c clock.Clock, log *zap.Logger) (*GoalStore, error) {
	log = logging.OrNop(log)
	if c == nil {
		c = clock.System{}
	}

	goals, err := loadJSON[[]model.Goal](kv, GoalsKey, log)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	log.Debug("goals loaded", zap.Int("count", len(goals)))
	return &GoalStore{kv: kv, clock: c, log: log, goals: goals}, nil
}

// List returns every goal in insertion order.
func (s *GoalStore) List() []model.Goal {
	return append([]model.Goal(nil), s.goals...)
}

// Get returns the goal with the given id.
func (s *GoalStore) Get(id string) (model.Goal, error) {
	i := s.index(id)
	if i < 0 {
		return model.Goal{}, fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	return s.goals[i], nil
}

// Add creates a goal with CurrentValue 0.
func (s *GoalStore) Add(in model.GoalInput) (model.Goal, error) {
	g := model.Goal{
		ID:          newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		TargetValue: in.TargetValue,
		Unit:        strings.TrimSpace(in.Unit),
		Deadline:    strings.TrimSpace(in.Deadline),
		Color:       in.Color,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   s.clock.Now(),
	}
	if err := validateGoal(g); err != nil {
		return model.Goal{}, err
	}

	next := append(s.snapshot(), g)
	if err := s.commit(next); err != nil {
		return model.Goal{}, err
	}
	s.log.Info("goal added", zap.String("id", g.ID), zap.String("title", g.Title))
	return g, nil
}

// UpdateProgress sets the goal's current value. The value is not clamped to
// [0, target]; only non-finite numbers are rejected.
func (s *GoalStore) UpdateProgress(id string, value float64) (model.Goal, error) {
	return s.Update(id, model.GoalPatch{CurrentValue: &value})
}

// Update merges the non-nil fields of patch into the goal. Each provided
// field is validated the same way Add validates it; fields left nil are not
// re-checked.
func (s *GoalStore) Update(id string, patch model.GoalPatch) (model.Goal, error) {
	i := s.index(id)
	if i < 0 {
		return model.Goal{}, fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}

	g := s.goals[i]
	if patch.Title != nil {
		g.Title = strings.TrimSpace(*patch.Title)
		if err := validateTitle(g.Title); err != nil {
			return model.Goal{}, err
		}
	}
	if patch.Description != nil {
		g.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.TargetValue != nil {
		if err := validateTarget(*patch.TargetValue); err != nil {
			return model.Goal{}, err
		}
		g.TargetValue = *patch.TargetValue
	}
	if patch.CurrentValue != nil {
		if !finite(*patch.CurrentValue) {
			return model.Goal{}, fmt.Errorf("%w: current value must be a finite number", ErrValidation)
		}
		g.CurrentValue = *patch.CurrentValue
	}
	if patch.Unit != nil {
		g.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.Deadline != nil {
		g.Deadline = strings.TrimSpace(*patch.Deadline)
		if err := validateDeadline(g.Deadline); err != nil {
			return model.Goal{}, err
		}
	}
	if patch.Color != nil {
		g.Color = *patch.Color
	}
	if patch.Category != nil {
		g.Category = strings.TrimSpace(*patch.Category)
	}

	next := s.snapshot()
	next[i] = g
	if err := s.commit(next); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// Remove deletes the goal with the given id. Removing an unknown id is a
// no-op.
func (s *GoalStore) Remove(id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}

	next := make([]model.Goal, 0, len(s.goals)-1)
	next = append(next, s.goals[:i]...)
	next = append(next, s.goals[i+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Info("goal removed", zap.String("id", id))
	return nil
}

func (s *GoalStore) index(id string) int {
	for i, g := range s.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s *GoalStore) snapshot() []model.Goal {
	return append(make([]model.Goal, 0, len(s.goals)+1), s.goals...)
}

func (s *GoalStore) commit(next []model.Goal) error {
	if err := saveJSON(s.kv, GoalsKey, next, s.log); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	s.goals = next
	return nil
}

func validateGoal(g model.Goal) error {
	if err := validateTitle(g.Title); err != nil {
		return err
	}
	if err := validateTarget(g.TargetValue); err != nil {
		return err
	}
	return validateDeadline(g.Deadline)
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: goal title is empty", ErrValidation)
	}
	return nil
}

func validateTarget(v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: target value must be greater than zero", ErrValidation)
	}
	return nil
}

func validateDeadline(d string) error {
	if !model.ValidDate(d) {
		return fmt.Errorf("%w: deadline %q is not a YYYY-MM-DD date", ErrValidation, d)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
