// Package model defines the domain types for habits, goals, and day annotations.
package model

import (
	"sort"
	"time"
)

// Habit is a recurring activity tracked by per-day completion.
type Habit struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Category       string    `json:"category" yaml:"category"`
	Color          string    `json:"color" yaml:"color"`
	CompletedDates []string  `json:"completedDates" yaml:"completedDates"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

// HabitCategories are the categories offered when creating a habit.
// Habits may still carry any free-text category.
var HabitCategories = []string{
	"Health & Fitness",
	"Productivity",
	"Learning",
	"Self-Care",
	"Social",
	"Finance",
	"Creative",
	"Spiritual",
}

// Palette holds the display colors offered for habits and goals.
var Palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#06B6D4", "#84CC16", "#F97316",
}

// CompletedOn reports whether the habit is marked done on date (YYYY-MM-DD).
func (h Habit) CompletedOn(date string) bool {
	i := sort.SearchStrings(h.CompletedDates, date)
	return i < len(h.CompletedDates) && h.CompletedDates[i] == date
}

// Clone returns a copy that shares no memory with h.
func (h Habit) Clone() Habit {
	c := h
	if h.CompletedDates != nil {
		c.CompletedDates = append([]string(nil), h.CompletedDates...)
	}
	return c
}

// HabitPatch holds the fields to change in an update. Nil fields are left
// untouched.
type HabitPatch struct {
	Name     *string
	Category *string
	Color    *string
}
