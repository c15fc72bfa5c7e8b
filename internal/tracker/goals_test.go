package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

func newGoals(t *testing.T, kv store.KV) *GoalStore {
	t.Helper()
	s, err := NewGoalStore(kv, testClock(), nil)
	require.NoError(t, err)
	return s
}

func booksGoal() model.GoalInput {
	return model.GoalInput{
		Title:       "Read more",
		TargetValue: 10,
		Unit:        "books",
		Deadline:    "2024-12-31",
		Category:    "Education",
	}
}

func TestGoalStore_AddInitializesProgress(t *testing.T) {
	s := newGoals(t, store.NewMemory())

	g, err := s.Add(booksGoal())
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Zero(t, g.CurrentValue)
	assert.True(t, g.CreatedAt.Equal(fixedNow))
	assert.Len(t, s.List(), 1)
}

func TestGoalStore_AddValidation(t *testing.T) {
	cases := map[string]func(*model.GoalInput){
		"empty title":     func(in *model.GoalInput) { in.Title = "  " },
		"zero target":     func(in *model.GoalInput) { in.TargetValue = 0 },
		"negative target": func(in *model.GoalInput) { in.TargetValue = -3 },
		"nan target":      func(in *model.GoalInput) { in.TargetValue = math.NaN() },
		"bad deadline":    func(in *model.GoalInput) { in.Deadline = "next week" },
		"empty deadline":  func(in *model.GoalInput) { in.Deadline = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			kv := store.NewMemory()
			s := newGoals(t, kv)
			in := booksGoal()
			mutate(&in)

			_, err := s.Add(in)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, s.List())
			_, ok, _ := kv.Load(GoalsKey)
			assert.False(t, ok)
		})
	}
}

func TestGoalStore_ReachingTargetCompletes(t *testing.T) {
	s := newGoals(t, store.NewMemory())
	g, err := s.Add(booksGoal())
	require.NoError(t, err)

	g, err = s.UpdateProgress(g.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCompleted, g.Status(day(t, "2024-06-01")))
}

func TestGoalStore_ProgressIsNotClamped(t *testing.T) {
	s := newGoals(t, store.NewMemory())
	g, err := s.Add(booksGoal())
	require.NoError(t, err)

	g, err = s.UpdateProgress(g.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 14.0, g.CurrentValue)
	assert.InDelta(t, 1.4, g.Progress(), 1e-9)

	g, err = s.UpdateProgress(g.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, -2.0, g.CurrentValue)

	_, err = s.UpdateProgress(g.ID, math.Inf(1))
	require.ErrorIs(t, err, ErrValidation)
	got, _ := s.Get(g.ID)
	assert.Equal(t, -2.0, got.CurrentValue)
}

func TestGoalStore_UpdateProgressUnknown(t *testing.T) {
	s := newGoals(t, store.NewMemory())
	_, err := s.UpdateProgress("nope", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGoalStore_UpdateValidatesProvidedFields(t *testing.T) {
	s := newGoals(t, store.NewMemory())
	g, err := s.Add(booksGoal())
	require.NoError(t, err)

	_, err = s.Update(g.ID, model.GoalPatch{TargetValue: ptr(0.0)})
	require.ErrorIs(t, err, ErrValidation)
	_, err = s.Update(g.ID, model.GoalPatch{Deadline: ptr("2024-02-30")})
	require.ErrorIs(t, err, ErrValidation)

	got, err := s.Update(g.ID, model.GoalPatch{
		Title:       ptr("Read a lot"),
		TargetValue: ptr(20.0),
		Deadline:    ptr("2025-01-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Read a lot", got.Title)
	assert.Equal(t, 20.0, got.TargetValue)
	assert.Equal(t, "2025-01-31", got.Deadline)
	assert.Equal(t, "books", got.Unit)
}

func TestGoalStore_RemoveIsIdempotent(t *testing.T) {
	kv := store.NewMemory()
	s := newGoals(t, kv)
	g, err := s.Add(booksGoal())
	require.NoError(t, err)

	require.NoError(t, s.Remove(g.ID))
	require.NoError(t, s.Remove(g.ID))
	assert.Empty(t, s.List())

	reloaded := newGoals(t, kv)
	assert.Empty(t, reloaded.List())
}

func TestGoalStore_DerivedFieldsNotPersisted(t *testing.T) {
	kv := store.NewMemory()
	s := newGoals(t, kv)
	_, err := s.Add(booksGoal())
	require.NoError(t, err)

	raw, _, err := kv.Load(GoalsKey)
	require.NoError(t, err)
	assert.NotContains(t, raw, "status")
	assert.NotContains(t, raw, "progress")
	assert.Contains(t, raw, `"targetValue":10`)
	assert.Contains(t, raw, `"currentValue":0`)
}
