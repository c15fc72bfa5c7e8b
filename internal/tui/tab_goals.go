package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tui/components"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	today := a.today()

	var completed, overdue int
	for _, g := range a.goalList {
		switch g.Status(today) {
		case model.GoalCompleted:
			completed++
		case model.GoalOverdue:
			overdue++
		}
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Goals", Value: cli.FormatNumber(int64(len(a.goalList)))},
		{Label: "Completed", Value: cli.FormatNumber(int64(completed)), Color: t.Green},
		{Label: "In Progress", Value: cli.FormatNumber(int64(len(a.goalList) - completed - overdue)), Color: t.Orange},
		{Label: "Overdue", Value: cli.FormatNumber(int64(overdue)), Color: t.Red},
	}, cw))
	b.WriteString("\n")

	if len(a.goalList) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(components.ContentCard("Goals", dim.Render("No goals yet. Press a to add one."), cw, true))
		return b.String()
	}

	if a.isCompactLayout() {
		b.WriteString(a.renderGoalList(cw))
		b.WriteString("\n")
		b.WriteString(a.renderGoalDetail(cw))
		return b.String()
	}

	listW := cw * 2 / 3
	b.WriteString(components.CardRow([]string{
		a.renderGoalList(listW),
		a.renderGoalDetail(cw - listW),
	}))
	return b.String()
}

func (a App) renderGoalList(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	today := a.today()

	labelW := innerW / 3
	if labelW > 28 {
		labelW = 28
	}
	barW := innerW - 2 - labelW - 1 - 5
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, g := range a.goalList {
		selected := i == a.goalCur
		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)
		marker := base.Render("  ")
		if selected {
			marker = base.Foreground(t.Accent).Bold(true).Render("› ")
		}

		status := g.Status(today)
		b.WriteString(marker)
		b.WriteString(components.GoalBar(g.Title, g.Progress(), status, labelW, barW))
		b.WriteString("\n")

		meta := cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit)
		if status != model.GoalCompleted {
			meta += " · " + cli.FormatDaysLeft(g.DaysLeft(today))
		}
		statusStyle := lipgloss.NewStyle().Foreground(components.ColorForStatus(status)).Background(t.Surface)
		metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		b.WriteString(metaStyle.Render("    " + meta + " · "))
		b.WriteString(statusStyle.Render(status.String()))
		if i < len(a.goalList)-1 {
			b.WriteString("\n\n")
		}
	}

	return components.ContentCard("Goals", b.String(), outerW, true)
}

func (a App) renderGoalDetail(outerW int) string {
	t := theme.Active
	g := a.goalList[a.goalCur]
	today := a.today()
	innerW := components.CardInnerWidth(outerW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Background(t.Surface).Bold(true)

	rows := []struct{ label, value string }{
		{"Category", g.Category},
		{"Progress", cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit)},
		{"Remaining", cli.FormatValue(g.Remaining())},
		{"Deadline", g.Deadline},
		{"Status", g.Status(today).String()},
		{"Created", cli.FormatShortDate(g.CreatedAt)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncStr(g.Title, innerW)))
	b.WriteString("\n")
	if g.Description != "" {
		b.WriteString(labelStyle.Render(truncStr(g.Description, innerW)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(padLabel(r.label, 11)))
		b.WriteString(valueStyle.Render(truncStr(r.value, innerW-11)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(g.Progress(), innerW-5))

	return components.ContentCard("Detail", b.String(), outerW, false)
}

func padLabel(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
