package model

// Mood is the per-day mood tag.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodTired Mood = "tired"
)

// MoodOption pairs a mood with its display label.
type MoodOption struct {
	Mood  Mood
	Emoji string
	Label string
}

// Moods lists every valid mood in display order.
var Moods = []MoodOption{
	{MoodGreat, "😊", "Great"},
	{MoodGood, "🙂", "Good"},
	{MoodOkay, "😐", "Okay"},
	{MoodLow, "😔", "Low"},
	{MoodTired, "😴", "Tired"},
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, o := range Moods {
		if o.Mood == m {
			return true
		}
	}
	return false
}

// Label returns the emoji and display label, or the raw tag if unknown.
func (m Mood) Label() string {
	for _, o := range Moods {
		if o.Mood == m {
			return o.Emoji + " " + o.Label
		}
	}
	return string(m)
}

// Task is one checklist item attached to a day.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// DayAnnotation groups everything recorded for a single calendar date.
type DayAnnotation struct {
	Date  string `json:"date" yaml:"date"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
	Mood  Mood   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Tasks []Task `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// Empty reports whether nothing has been recorded for the day.
func (d DayAnnotation) Empty() bool {
	return d.Note == "" && d.Mood == "" && len(d.Tasks) == 0
}
