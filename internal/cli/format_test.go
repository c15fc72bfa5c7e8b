package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		10:    "10",
		2.5:   "2.5",
		0:     "0",
		-3:    "-3",
		1.126: "1.13",
	}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
	if got := FormatQuantity(3, 10, "books"); got != "3/10 books" {
		t.Errorf("FormatQuantity = %q", got)
	}
}

func TestFormatDaysLeft(t *testing.T) {
	tests := map[int]string{
		0:  "due today",
		1:  "1 day left",
		5:  "5 days left",
		-1: "1 day overdue",
		-4: "4 days overdue",
	}
	for in, want := range tests {
		if got := FormatDaysLeft(in); got != want {
			t.Errorf("FormatDaysLeft(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatStreak(t *testing.T) {
	if got := FormatStreak(0); got != "-" {
		t.Errorf("FormatStreak(0) = %q", got)
	}
	if got := FormatStreak(4); got != "🔥 4 days" {
		t.Errorf("FormatStreak(4) = %q", got)
	}
}

func TestFormatShortDate(t *testing.T) {
	d := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatShortDate(d); got != "Jan 7" {
		t.Errorf("FormatShortDate = %q", got)
	}
	if got := FormatDayOfWeek(int(d.Weekday())); got != "Sun" {
		t.Errorf("FormatDayOfWeek = %q", got)
	}
}

func TestRenderRatioBar_CapsDisplay(t *testing.T) {
	over := RenderRatioBar(1.7, 10)
	if !strings.Contains(over, "100%") {
		t.Errorf("over-target bar = %q, want 100%%", over)
	}
	under := RenderRatioBar(-0.5, 10)
	if !strings.Contains(under, "0%") || strings.Contains(under, "█") {
		t.Errorf("negative bar = %q", under)
	}
}

func TestRenderTable_Separator(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Streak"},
		Rows:    [][]string{{"Read", "3"}, {"---"}, {"Total", "3"}},
	})
	if strings.Count(out, "\n") != 7 {
		t.Errorf("table has %d lines, want 7:\n%s", strings.Count(out, "\n"), out)
	}
	if !strings.Contains(out, "Read") || !strings.Contains(out, "Total") {
		t.Errorf("table missing rows:\n%s", out)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Habit", "Days"},
		Rows:    [][]string{{"Read", "12"}, {"Run", "3"}},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "│ Habit │ Days │") {
		t.Errorf("header row = %q, want left-aligned headers", lines[1])
	}
	if !strings.Contains(lines[4], "│ Run   │    3 │") {
		t.Errorf("data row = %q, want name left and count right", lines[4])
	}
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("empty table = %q, want empty", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0190a1b2-c3d4-7abc-8def-00000000abcd"); got != "0000abcd" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID short = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := RenderMarkdown("   ", 40); got != "" {
		t.Errorf("blank note rendered %q", got)
	}
	if got := RenderMarkdown("slept **well**", 40); !strings.Contains(got, "well") {
		t.Errorf("rendered note lost text: %q", got)
	}
}
