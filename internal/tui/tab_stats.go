package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/tui/components"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	s := a.summary

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Active Habits", Value: cli.FormatNumber(int64(s.ActiveHabits))},
		{Label: "Done Today", Value: fmt.Sprintf("%d/%d", s.CompletedToday, s.ActiveHabits), Color: t.Green},
		{Label: fmt.Sprintf("%d-Day Average", s.WindowDays), Value: cli.FormatWholePercent(s.WindowAverage),
			Sub: cli.FormatNumber(int64(s.WindowCompletions)) + " completions", Color: t.Accent},
		{Label: "Current Streak", Value: fmt.Sprintf("%d days", s.CurrentStreak), Color: t.Orange},
		{Label: "Best Streak", Value: fmt.Sprintf("%d days", s.BestStreak), Sub: "single habit"},
	}, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(a.renderWeeklyCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderDailyCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderCategoriesCard(cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		a.renderWeeklyCard(widths[0]),
		a.renderCategoriesCard(widths[1]),
	}))
	b.WriteString("\n")
	b.WriteString(a.renderDailyCard(cw))
	return b.String()
}

func (a App) renderWeeklyCard(outerW int) string {
	innerW := components.CardInnerWidth(outerW)
	rates := make([]float64, len(a.weekly))
	for i, w := range a.weekly {
		rates[i] = w.Rate()
	}
	chart := components.RateChart(rates, weekLabels(a.weekly), theme.Active.Accent, innerW, 8)
	return components.ContentCard(fmt.Sprintf("Weekly Completion · %d weeks", len(a.weekly)), chart, outerW, false)
}

func (a App) renderDailyCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	values := make([]float64, len(a.daily))
	for i, d := range a.daily {
		values[i] = d.Percent
	}
	if len(values) > innerW {
		values = values[len(values)-innerW:]
	}

	body := components.Sparkline(values, t.Green)
	if n := len(a.daily); n > 0 {
		first := cli.FormatShortDate(a.daily[len(a.daily)-len(values)].Date)
		last := cli.FormatShortDate(a.daily[n-1].Date)
		gap := len(values) - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		body += "\n" + dim.Render(first+strings.Repeat(" ", gap)+last)
	}
	return components.ContentCard(fmt.Sprintf("Daily Completion · %d days", len(a.daily)), body, outerW, false)
}

func (a App) renderCategoriesCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.categories) == 0 {
		return components.ContentCard("Categories", countStyle.Render("No habits yet"), outerW, false)
	}

	labelW := 0
	peak := 0
	for _, c := range a.categories {
		if w := lipgloss.Width(c.Category); w > labelW {
			labelW = w
		}
		if c.Habits > peak {
			peak = c.Habits
		}
	}
	if labelW > innerW/2 {
		labelW = innerW / 2
	}
	barMax := innerW - labelW - 5
	if barMax < 1 {
		barMax = 1
	}

	var b strings.Builder
	for i, c := range a.categories {
		n := c.Habits * barMax / peak
		if n < 1 {
			n = 1
		}
		b.WriteString(labelStyle.Render(padLabel(truncStr(c.Category, labelW), labelW)))
		b.WriteString(labelStyle.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(countStyle.Render(fmt.Sprintf(" %d", c.Habits)))
		if i < len(a.categories)-1 {
			b.WriteString("\n")
		}
	}
	return components.ContentCard("Categories", b.String(), outerW, false)
}
