// Package pipeline derives streaks and completion rollups from habit data.
// Every function here is pure: it reads a snapshot and never mutates it.
package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/radar/internal/model"
)

// DefaultWeeks and DefaultDays are the rollup windows used when the caller
// has no configured value.
const (
	DefaultWeeks = 8
	DefaultDays  = 30
)

// AggregateWeeks computes n Sunday-started weeks of completions, ending with
// the week that contains today. Output is chronological.
func AggregateWeeks(habits []model.Habit, today time.Time, n int) []model.WeeklyStats {
	if n <= 0 {
		return nil
	}

	first := model.AddDays(model.StartOfWeek(today), -7*(n-1))
	weeks := make([]model.WeeklyStats, 0, n)
	for w := 0; w < n; w++ {
		start := model.AddDays(first, 7*w)
		ws := model.WeeklyStats{WeekStart: start, Possible: len(habits) * 7}
		for d := 0; d < 7; d++ {
			ws.Completed += completedOn(habits, model.FormatDate(model.AddDays(start, d)))
		}
		weeks = append(weeks, ws)
	}
	return weeks
}

// AggregateDays computes per-day completion for the last n days including
// today. Output is chronological.
func AggregateDays(habits []model.Habit, today time.Time, n int) []model.DailyStats {
	if n <= 0 {
		return nil
	}

	start := model.AddDays(today, -(n - 1))
	days := make([]model.DailyStats, 0, n)
	for i := 0; i < n; i++ {
		day := model.AddDays(start, i)
		ds := model.DailyStats{
			Date:      day,
			Completed: completedOn(habits, model.FormatDate(day)),
			Total:     len(habits),
		}
		if ds.Total > 0 {
			ds.Percent = float64(ds.Completed) / float64(ds.Total) * 100
		}
		days = append(days, ds)
	}
	return days
}

// AggregateCategories counts habits per category. Categories are compared
// exactly, so "Health" and "health" are separate groups. Sorted by count
// descending, then name.
func AggregateCategories(habits []model.Habit) []model.CategoryStats {
	catMap := make(map[string]int)
	for _, h := range habits {
		catMap[h.Category]++
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for name, n := range catMap {
		cats = append(cats, model.CategoryStats{Category: name, Habits: n})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Habits != cats[j].Habits {
			return cats[i].Habits > cats[j].Habits
		}
		return cats[i].Category < cats[j].Category
	})
	return cats
}

// DigestHabit computes the per-habit figures: lifetime total, current and
// best streak, and completions in the week containing today.
func DigestHabit(h model.Habit, today time.Time) model.HabitStats {
	hs := model.HabitStats{
		HabitID:       h.ID,
		Name:          h.Name,
		TotalDays:     len(h.CompletedDates),
		CurrentStreak: CurrentStreak(h, today),
		BestStreak:    BestStreak(h),
	}
	week := model.StartOfWeek(today)
	for d := 0; d < 7; d++ {
		if h.CompletedOn(model.FormatDate(model.AddDays(week, d))) {
			hs.WeeklyCount++
		}
	}
	return hs
}

// Summarize computes the top-level figures across all habits. window is the
// number of trailing days (including today) used for the average.
func Summarize(habits []model.Habit, today time.Time, window int) model.SummaryStats {
	if window <= 0 {
		window = DefaultDays
	}

	stats := model.SummaryStats{
		ActiveHabits:  len(habits),
		WindowDays:    window,
		CurrentStreak: OverallStreak(habits, today),
	}

	todayKey := model.FormatDate(today)
	for _, h := range habits {
		stats.TotalCompletions += len(h.CompletedDates)
		if h.CompletedOn(todayKey) {
			stats.CompletedToday++
		}
		if best := BestStreak(h); best > stats.BestStreak {
			stats.BestStreak = best
		}
	}

	for _, ds := range AggregateDays(habits, today, window) {
		stats.WindowCompletions += ds.Completed
	}
	if possible := len(habits) * window; possible > 0 {
		stats.WindowAverage = float64(stats.WindowCompletions) / float64(possible) * 100
	}

	return stats
}

func completedOn(habits []model.Habit, date string) int {
	n := 0
	for _, h := range habits {
		if h.CompletedOn(date) {
			n++
		}
	}
	return n
}
