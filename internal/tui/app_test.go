package tui

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/config"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
	"github.com/theirongolddev/radar/internal/tracker"
	"github.com/theirongolddev/radar/internal/tui/components"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

type testStores struct {
	habits *tracker.HabitStore
	goals  *tracker.GoalStore
	days   *tracker.DayStore
}

func newStores(t *testing.T) testStores {
	t.Helper()
	kv := store.NewMemory()
	clk := clock.Fixed(testNow)
	habits, err := tracker.NewHabitStore(kv, clk, nil)
	if err != nil {
		t.Fatalf("NewHabitStore: %v", err)
	}
	goals, err := tracker.NewGoalStore(kv, clk, nil)
	if err != nil {
		t.Fatalf("NewGoalStore: %v", err)
	}
	return testStores{habits: habits, goals: goals, days: tracker.NewDayStore(kv, nil)}
}

func (s testStores) app() App {
	return NewApp(Options{
		Habits: s.habits,
		Goals:  s.goals,
		Days:   s.days,
		Clock:  clock.Fixed(testNow),
		Config: config.DefaultConfig(),
	})
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	labels := []string{"1 Today", "2 Goals", "3 Stats"}
	for active := range labels {
		a := App{activeTab: active}
		pos := 0

		for i, label := range labels {
			w := len(label) + 2 // horizontal padding in tab renderer
			x := pos + w/2
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(labels)-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("x past last tab -> %d, want -1", got)
		}
	}
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	a := newStores(t).app()
	for i, tab := range components.Tabs {
		a = press(t, a, string(tab.Key))
		if a.activeTab != i {
			t.Errorf("key %q -> tab %d, want %d", tab.Key, a.activeTab, i)
		}
	}
}

func TestSpaceTogglesHabitOnViewedDay(t *testing.T) {
	s := newStores(t)
	h, err := s.habits.Add("Drink Water", "Health & Fitness", "#3B82F6")
	if err != nil {
		t.Fatal(err)
	}
	a := s.app()

	a = press(t, a, " ")
	got, _ := s.habits.Get(h.ID)
	if !got.CompletedOn("2024-01-10") {
		t.Fatalf("completed dates = %v, want today marked", got.CompletedDates)
	}

	a = press(t, a, "h")
	a = press(t, a, " ")
	got, _ = s.habits.Get(h.ID)
	if !got.CompletedOn("2024-01-09") {
		t.Fatalf("completed dates = %v, want yesterday marked", got.CompletedDates)
	}

	a = press(t, a, "l")
	a = press(t, a, "l")
	if a.dayOffset != 0 {
		t.Errorf("dayOffset = %d, want 0 (cannot move past today)", a.dayOffset)
	}

	_ = press(t, a, " ")
	got, _ = s.habits.Get(h.ID)
	if got.CompletedOn("2024-01-10") {
		t.Error("second toggle should unmark today")
	}
}

func TestSpaceTogglesPreviousDayWithoutMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("load location: %v", err)
	}
	s := newStores(t)
	h, err := s.habits.Add("Drink Water", "Health & Fitness", "#3B82F6")
	if err != nil {
		t.Fatal(err)
	}
	a := NewApp(Options{
		Habits: s.habits,
		Goals:  s.goals,
		Days:   s.days,
		Clock:  clock.Fixed(time.Date(2024, 9, 9, 10, 0, 0, 0, loc)),
		Config: config.DefaultConfig(),
	})

	a = press(t, a, "h")
	_ = press(t, a, " ")
	got, _ := s.habits.Get(h.ID)
	if len(got.CompletedDates) != 1 || !got.CompletedOn("2024-09-08") {
		t.Errorf("completed dates = %v, want [2024-09-08]", got.CompletedDates)
	}
}

func TestGoalAdjustKeys(t *testing.T) {
	s := newStores(t)
	g, err := s.goals.Add(model.GoalInput{Title: "Run", TargetValue: 2, Unit: "km", Deadline: "2024-02-01"})
	if err != nil {
		t.Fatal(err)
	}
	a := press(t, s.app(), "2")

	a = press(t, a, "+")
	a = press(t, a, "+")
	got, _ := s.goals.Get(g.ID)
	if got.CurrentValue != 2 {
		t.Fatalf("CurrentValue = %v, want 2", got.CurrentValue)
	}
	if !strings.Contains(a.flash, "completed") {
		t.Errorf("flash = %q, want completion notice", a.flash)
	}

	_ = press(t, a, "-")
	got, _ = s.goals.Get(g.ID)
	if got.CurrentValue != 1 {
		t.Errorf("CurrentValue = %v, want 1", got.CurrentValue)
	}
}

func TestTaskToggleFromTasksPane(t *testing.T) {
	s := newStores(t)
	if _, err := s.days.AddTask(testNow, "Buy milk"); err != nil {
		t.Fatal(err)
	}
	a := s.app()

	a = press(t, a, "tab")
	if a.pane != paneTasks {
		t.Fatalf("pane = %d, want tasks", a.pane)
	}
	_ = press(t, a, " ")

	tasks, err := s.days.Tasks(testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("tasks = %+v, want one completed task", tasks)
	}
}

func TestEscClosesFormWithoutSaving(t *testing.T) {
	s := newStores(t)
	a := s.app()

	a = press(t, a, "a")
	if a.form == nil || a.formKind != formAddHabit {
		t.Fatalf("form kind = %d, want add-habit form open", a.formKind)
	}
	a = press(t, a, "esc")
	if a.form != nil {
		t.Fatal("esc should close the form")
	}
	if n := len(s.habits.List()); n != 0 {
		t.Errorf("habits = %d, want 0", n)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	s := newStores(t)
	if _, err := s.habits.Add("Read", "Learning", "#10B981"); err != nil {
		t.Fatal(err)
	}
	a := press(t, s.app(), "D")
	if a.formKind != formDeleteHabit {
		t.Fatalf("form kind = %d, want delete confirmation", a.formKind)
	}
	if n := len(s.habits.List()); n != 1 {
		t.Errorf("habit removed before confirmation")
	}
}

func TestViewRendersEachTab(t *testing.T) {
	s := newStores(t)
	if _, err := s.habits.Add("Meditate", "Self-Care", "#8B5CF6"); err != nil {
		t.Fatal(err)
	}
	a := s.app()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	a = m.(App)

	want := map[string]string{
		"1": "Meditate",
		"2": "No goals yet",
		"3": "Weekly Completion",
	}
	for key, text := range want {
		a = press(t, a, key)
		if view := a.View(); !strings.Contains(view, text) {
			t.Errorf("tab %s view missing %q", key, text)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := App{width: 60, height: 20}
	if view := a.View(); !strings.Contains(view, "too narrow") {
		t.Errorf("View() = %q, want narrow-terminal notice", view)
	}
}

func TestWeekLabels(t *testing.T) {
	weeks := []model.WeeklyStats{
		{WeekStart: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)},
		{WeekStart: time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)},
		{WeekStart: time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC)},
	}
	got := weekLabels(weeks)
	want := []string{"Jan 21", "28", "Feb 4"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
