package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

func TestRateChartShape(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{0, 0.25, 0.5, 1}
	labels := []string{"Jan 7", "14", "21", "28"}
	chart := RateChart(values, labels, theme.Active.Accent, 60, 6)

	lines := strings.Split(chart, "\n")
	if len(lines) != 6+2 {
		t.Fatalf("chart has %d lines, want %d (rows + axis + labels)", len(lines), 8)
	}
	if !strings.Contains(lines[0], "100%") {
		t.Errorf("top row %q missing 100%% tick", lines[0])
	}
}

func TestRateChartFallsBackToSparkline(t *testing.T) {
	got := RateChart([]float64{0.1, 0.9}, nil, theme.Active.Accent, 10, 6)
	if strings.Contains(got, "\n") {
		t.Errorf("narrow chart should be a single-line sparkline, got %q", got)
	}
}

func TestGoalBarWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, pct := range []float64{-0.5, 0, 0.5, 1, 1.4} {
		bar := GoalBar("Read more books", pct, model.GoalInProgress, 10, 20)
		if w := lipgloss.Width(bar); w != 10+1+20+1+4 {
			t.Errorf("pct=%v: width %d, want %d", pct, w, 36)
		}
	}
	if bar := GoalBar("Run", 1.4, model.GoalCompleted, 10, 20); !strings.Contains(bar, "100%") {
		t.Errorf("over-target bar should cap at 100%%: %q", bar)
	}
}

func TestProgressBarClamps(t *testing.T) {
	if got := ProgressBar(-1, 10); !strings.Contains(got, "  0%") {
		t.Errorf("ProgressBar(-1) = %q, want 0%%", got)
	}
	if got := ProgressBar(3, 10); !strings.Contains(got, "100%") {
		t.Errorf("ProgressBar(3) = %q, want 100%%", got)
	}
}
