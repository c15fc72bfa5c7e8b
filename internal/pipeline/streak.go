package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/radar/internal/model"
)

// CurrentStreak counts consecutive completed days walking back from anchor.
// It is 0 when anchor itself is not completed.
func CurrentStreak(h model.Habit, anchor time.Time) int {
	streak := 0
	for day := model.Day(anchor); h.CompletedOn(model.FormatDate(day)); day = model.AddDays(day, -1) {
		streak++
	}
	return streak
}

// BestStreak returns the longest run of consecutive calendar days in the
// habit's completion set.
func BestStreak(h model.Habit) int {
	dates := append([]string(nil), h.CompletedDates...)
	sort.Strings(dates)

	best, run := 0, 0
	for i, d := range dates {
		if i == 0 {
			run = 1
		} else {
			diff, ok := model.DayDiff(dates[i-1], d)
			switch {
			case ok && diff == 0:
				continue
			case ok && diff == 1:
				run++
			default:
				run = 1
			}
		}
		if run > best {
			best = run
		}
	}
	return best
}

// OverallStreak counts consecutive days back from today on which at least
// one habit was completed.
func OverallStreak(habits []model.Habit, today time.Time) int {
	streak := 0
	for day := model.Day(today); completedOn(habits, model.FormatDate(day)) > 0; day = model.AddDays(day, -1) {
		streak++
	}
	return streak
}
