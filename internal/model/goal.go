package model

import (
	"math"
	"time"
)

// Goal is a numeric target to reach by a deadline.
type Goal struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	TargetValue  float64   `json:"targetValue" yaml:"targetValue"`
	CurrentValue float64   `json:"currentValue" yaml:"currentValue"`
	Unit         string    `json:"unit" yaml:"unit"`
	Deadline     string    `json:"deadline" yaml:"deadline"`
	Color        string    `json:"color" yaml:"color"`
	Category     string    `json:"category" yaml:"category"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
}

// GoalCategories are the categories offered when creating a goal.
var GoalCategories = []string{
	"Health & Fitness",
	"Career",
	"Education",
	"Finance",
	"Personal",
	"Relationships",
	"Hobbies",
	"Travel",
	"Other",
}

// GoalStatus is derived from a goal's values and the current date.
type GoalStatus int

const (
	GoalInProgress GoalStatus = iota
	GoalCompleted
	GoalOverdue
)

func (s GoalStatus) String() string {
	switch s {
	case GoalCompleted:
		return "Completed"
	case GoalOverdue:
		return "Overdue"
	default:
		return "In Progress"
	}
}

// Progress returns CurrentValue/TargetValue. The ratio is not clamped and
// may be negative or exceed 1.
func (g Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue
}

// Status derives the goal status as of today.
func (g Goal) Status(today time.Time) GoalStatus {
	if g.Progress() >= 1 {
		return GoalCompleted
	}
	if g.Deadline < FormatDate(today) {
		return GoalOverdue
	}
	return GoalInProgress
}

// DaysLeft returns the calendar days from today until the deadline.
// Zero means the deadline is today; negative values mean it has passed.
func (g Goal) DaysLeft(today time.Time) int {
	d, ok := DayDiff(FormatDate(today), g.Deadline)
	if !ok {
		return 0
	}
	return d
}

// Remaining returns how much is left to reach the target, never below zero.
func (g Goal) Remaining() float64 {
	return math.Max(0, g.TargetValue-g.CurrentValue)
}

// GoalInput carries the caller-supplied fields for a new goal.
type GoalInput struct {
	Title       string
	Description string
	TargetValue float64
	Unit        string
	Deadline    string
	Color       string
	Category    string
}

// GoalPatch holds the fields to change in an update. Nil fields are left
// untouched.
type GoalPatch struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Deadline     *string
	Color        *string
	Category     *string
}
