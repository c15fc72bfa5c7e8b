package model

import "time"

// DailyStats holds habit completion for a single calendar day.
type DailyStats struct {
	Date      time.Time
	Completed int
	Total     int
	Percent   float64
}

// WeeklyStats holds habit completion for one Sunday-started week.
type WeeklyStats struct {
	WeekStart time.Time
	Completed int
	Possible  int
}

// Rate returns the completed share of possible (habit, day) pairs in [0, 1].
func (w WeeklyStats) Rate() float64 {
	if w.Possible == 0 {
		return 0
	}
	return float64(w.Completed) / float64(w.Possible)
}

// CategoryStats counts habits sharing one category string.
type CategoryStats struct {
	Category string
	Habits   int
}

// HabitStats holds the per-habit figures shown next to each habit.
type HabitStats struct {
	HabitID       string
	Name          string
	TotalDays     int
	CurrentStreak int
	BestStreak    int
	WeeklyCount   int
}

// SummaryStats holds the top-level aggregate across all habits.
type SummaryStats struct {
	ActiveHabits      int
	CompletedToday    int
	TotalCompletions  int
	WindowDays        int
	WindowCompletions int
	WindowAverage     float64 // percent of possible (habit, day) pairs in the window
	BestStreak        int
	CurrentStreak     int
}
