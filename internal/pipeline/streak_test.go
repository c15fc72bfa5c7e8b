package pipeline

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/theirongolddev/radar/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func habit(name string, dates ...string) model.Habit {
	return model.Habit{ID: name, Name: name, Category: "Health & Fitness", CompletedDates: dates}
}

func TestBestStreak_DrinkWater(t *testing.T) {
	h := habit("Drink Water", "2024-01-01", "2024-01-02", "2024-01-03")
	if got := BestStreak(h); got != 3 {
		t.Fatalf("BestStreak = %d, want 3", got)
	}

	h.CompletedDates = []string{"2024-01-01", "2024-01-03"}
	if got := BestStreak(h); got != 1 {
		t.Fatalf("BestStreak after removing middle day = %d, want 1", got)
	}
}

func TestBestStreak_Edges(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single", []string{"2024-03-05"}, 1},
		{"unsorted", []string{"2024-01-03", "2024-01-01", "2024-01-02"}, 3},
		{"month boundary", []string{"2024-01-31", "2024-02-01"}, 2},
		{"leap day", []string{"2024-02-28", "2024-02-29", "2024-03-01"}, 3},
		{"later run wins", []string{"2024-01-01", "2024-01-05", "2024-01-06", "2024-01-07"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestStreak(habit("h", tt.dates...)); got != tt.want {
				t.Errorf("BestStreak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	h := habit("Read", "2024-01-07", "2024-01-08", "2024-01-10")

	if got := CurrentStreak(h, mustDate(t, "2024-01-08")); got != 2 {
		t.Errorf("streak at 01-08 = %d, want 2", got)
	}
	if got := CurrentStreak(h, mustDate(t, "2024-01-10")); got != 1 {
		t.Errorf("streak at 01-10 = %d, want 1", got)
	}
	if got := CurrentStreak(h, mustDate(t, "2024-01-09")); got != 0 {
		t.Errorf("streak at 01-09 = %d, want 0", got)
	}
}

func TestCurrentStreak_IgnoresTimeOfDay(t *testing.T) {
	h := habit("Read", "2024-01-09", "2024-01-10")
	anchor := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	if got := CurrentStreak(h, anchor); got != 2 {
		t.Fatalf("CurrentStreak = %d, want 2", got)
	}
}

func TestBestStreakNeverBelowCurrent(t *testing.T) {
	h := habit("Walk",
		"2024-01-01", "2024-01-02",
		"2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07",
		"2024-01-20",
	)
	best := BestStreak(h)
	for _, d := range h.CompletedDates {
		if cur := CurrentStreak(h, mustDate(t, d)); cur > best {
			t.Errorf("CurrentStreak(%s) = %d exceeds BestStreak %d", d, cur, best)
		}
	}
}

func TestOverallStreak(t *testing.T) {
	habits := []model.Habit{
		habit("a", "2024-01-10", "2024-01-08"),
		habit("b", "2024-01-09"),
	}
	if got := OverallStreak(habits, mustDate(t, "2024-01-10")); got != 3 {
		t.Fatalf("OverallStreak = %d, want 3", got)
	}
	if got := OverallStreak(habits, mustDate(t, "2024-01-11")); got != 0 {
		t.Fatalf("OverallStreak with nothing today = %d, want 0", got)
	}
	if got := OverallStreak(nil, mustDate(t, "2024-01-10")); got != 0 {
		t.Fatalf("OverallStreak(nil) = %d, want 0", got)
	}
}

func santiagoMonday(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("load location: %v", err)
	}
	// 2024-09-08 has no midnight in Santiago: clocks jump to 01:00.
	return time.Date(2024, 9, 9, 10, 0, 0, 0, loc)
}

func TestStreaksDoNotSkipDayWithoutMidnight(t *testing.T) {
	now := santiagoMonday(t)
	h := habit("Drink Water", "2024-09-07", "2024-09-09")

	if got := CurrentStreak(h, now); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
	if got := OverallStreak([]model.Habit{h}, now); got != 1 {
		t.Errorf("OverallStreak = %d, want 1", got)
	}

	h.CompletedDates = append(h.CompletedDates, "2024-09-08")
	if got := CurrentStreak(h, now); got != 3 {
		t.Errorf("CurrentStreak with gap filled = %d, want 3", got)
	}
}
