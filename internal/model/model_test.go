package model

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestValidDate(t *testing.T) {
	tests := map[string]bool{
		"2024-01-01": true,
		"2024-02-29": true,
		"2023-02-29": false,
		"2024-1-01":  false,
		"2024-01-1":  false,
		"":           false,
		"01/02/2024": false,
	}
	for in, want := range tests {
		if got := ValidDate(in); got != want {
			t.Errorf("ValidDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDayDiff(t *testing.T) {
	if d, ok := DayDiff("2024-02-28", "2024-03-01"); !ok || d != 2 {
		t.Errorf("DayDiff across leap day = %d, %v; want 2, true", d, ok)
	}
	if d, ok := DayDiff("2024-01-10", "2024-01-01"); !ok || d != -9 {
		t.Errorf("DayDiff backwards = %d, %v; want -9, true", d, ok)
	}
	if _, ok := DayDiff("nope", "2024-01-01"); ok {
		t.Error("DayDiff accepted a malformed date")
	}
}

func TestStartOfWeek_Sunday(t *testing.T) {
	tests := map[string]string{
		"2024-01-07": "2024-01-07",
		"2024-01-10": "2024-01-07",
		"2024-01-13": "2024-01-07",
		"2024-01-01": "2023-12-31",
	}
	for in, want := range tests {
		if got := FormatDate(StartOfWeek(mustDate(t, in))); got != want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", in, got, want)
		}
	}
}

// Santiago skips from 2024-09-08 00:00 straight to 01:00.
func TestCalendarMathAcrossMidnightDSTGap(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("load location: %v", err)
	}
	mon := time.Date(2024, 9, 9, 10, 0, 0, 0, loc)

	if got := FormatDate(AddDays(mon, -1)); got != "2024-09-08" {
		t.Errorf("AddDays(-1) = %s, want 2024-09-08", got)
	}
	if got := FormatDate(AddDays(mon, -2)); got != "2024-09-07" {
		t.Errorf("AddDays(-2) = %s, want 2024-09-07", got)
	}
	ws := StartOfWeek(mon)
	if got := FormatDate(ws); got != "2024-09-08" || ws.Weekday() != time.Sunday {
		t.Errorf("StartOfWeek = %s (%s), want 2024-09-08 (Sunday)", got, ws.Weekday())
	}

	d, err := ParseDate("2024-09-08", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatDate(d); got != "2024-09-08" {
		t.Errorf("ParseDate round trip = %s, want 2024-09-08", got)
	}
}

func TestGoalStatus(t *testing.T) {
	today := mustDate(t, "2024-06-01")
	tests := []struct {
		name string
		goal Goal
		want GoalStatus
	}{
		{"reached", Goal{TargetValue: 10, CurrentValue: 10, Deadline: "2024-12-31"}, GoalCompleted},
		{"reached after deadline", Goal{TargetValue: 10, CurrentValue: 12, Deadline: "2024-01-01"}, GoalCompleted},
		{"past deadline", Goal{TargetValue: 10, CurrentValue: 3, Deadline: "2024-05-31"}, GoalOverdue},
		{"due today", Goal{TargetValue: 10, CurrentValue: 3, Deadline: "2024-06-01"}, GoalInProgress},
		{"future", Goal{TargetValue: 10, CurrentValue: 0, Deadline: "2025-01-01"}, GoalInProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Status(today); got != tt.want {
				t.Errorf("Status = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGoalDaysLeft(t *testing.T) {
	g := Goal{Deadline: "2024-06-10"}
	if got := g.DaysLeft(mustDate(t, "2024-06-01")); got != 9 {
		t.Errorf("DaysLeft before = %d, want 9", got)
	}
	if got := g.DaysLeft(mustDate(t, "2024-06-10")); got != 0 {
		t.Errorf("DaysLeft on deadline = %d, want 0", got)
	}
	if got := g.DaysLeft(mustDate(t, "2024-06-15")); got != -5 {
		t.Errorf("DaysLeft after = %d, want -5", got)
	}
}

func TestGoalProgress(t *testing.T) {
	if p := (Goal{TargetValue: 4, CurrentValue: 6}).Progress(); p != 1.5 {
		t.Errorf("Progress = %v, want 1.5 (unclamped)", p)
	}
	if p := (Goal{TargetValue: 0, CurrentValue: 6}).Progress(); p != 0 {
		t.Errorf("Progress with zero target = %v, want 0", p)
	}
	if r := (Goal{TargetValue: 4, CurrentValue: 6}).Remaining(); r != 0 {
		t.Errorf("Remaining = %v, want 0", r)
	}
}

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{CompletedDates: []string{"2024-01-01", "2024-01-03"}}
	if !h.CompletedOn("2024-01-03") || h.CompletedOn("2024-01-02") {
		t.Fatal("CompletedOn mismatch")
	}
	c := h.Clone()
	c.CompletedDates[0] = "1999-01-01"
	if h.CompletedDates[0] != "2024-01-01" {
		t.Fatal("Clone shares backing array")
	}
}

func TestMood(t *testing.T) {
	if !MoodGreat.Valid() || Mood("meh").Valid() {
		t.Fatal("Mood.Valid mismatch")
	}
	if got := MoodTired.Label(); got != "😴 Tired" {
		t.Errorf("Label = %q", got)
	}
}
