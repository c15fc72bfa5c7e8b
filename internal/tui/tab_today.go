package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
	"github.com/theirongolddev/radar/internal/tui/components"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	date := model.FormatDate(a.viewedDay())

	done := 0
	for _, h := range a.habitList {
		if h.CompletedOn(date) {
			done++
		}
	}
	tasksDone := 0
	for _, task := range a.annotation.Tasks {
		if task.Completed {
			tasksDone++
		}
	}

	donePct := ""
	if len(a.habitList) > 0 {
		donePct = cli.FormatPercent(float64(done) / float64(len(a.habitList)))
	}
	mood := "-"
	if a.annotation.Mood != "" {
		mood = a.annotation.Mood.Label()
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Habits Done", Value: fmt.Sprintf("%d/%d", done, len(a.habitList)), Sub: donePct, Color: t.Green},
		{Label: "Streak", Value: fmt.Sprintf("%d", a.summary.CurrentStreak), Sub: "days with any habit", Color: t.Orange},
		{Label: "Tasks", Value: fmt.Sprintf("%d/%d", tasksDone, len(a.annotation.Tasks))},
		{Label: "Mood", Value: mood},
	}, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(a.renderHabitsCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderDayCard(cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		a.renderHabitsCard(widths[0]),
		a.renderDayCard(widths[1]),
	}))
	return b.String()
}

func (a App) renderHabitsCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	today := a.today()
	date := model.FormatDate(a.viewedDay())
	focused := a.pane == paneHabits

	title := "Habits · " + a.viewedDay().Format("Mon Jan 2")
	if len(a.habitList) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		return components.ContentCard(title, dim.Render("No habits yet. Press a to add one."), outerW, focused)
	}

	const streakW = 12
	nameW := innerW - 2 - 2 - 2 - streakW - 1
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	for i, h := range a.habitList {
		bg := t.Surface
		if focused && i == a.habitCur {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)
		marker := base.Foreground(t.TextDim).Render("  ")
		if focused && i == a.habitCur {
			marker = base.Foreground(t.Accent).Bold(true).Render("› ")
		}

		checkStyle := base.Foreground(t.TextDim)
		nameStyle := base.Foreground(t.TextPrimary)
		done := h.CompletedOn(date)
		if done {
			checkStyle = base.Foreground(t.Green).Bold(true)
			nameStyle = base.Foreground(t.TextMuted).Strikethrough(true)
		}
		swatch := base.Foreground(lipgloss.Color(h.Color)).Render("● ")

		streak := pipeline.CurrentStreak(h, today)
		streakStyle := base.Foreground(t.TextDim)
		if streak > 0 {
			streakStyle = base.Foreground(t.Orange)
		}

		b.WriteString(marker)
		b.WriteString(checkStyle.Render(cli.FormatCheck(done) + " "))
		b.WriteString(swatch)
		b.WriteString(nameStyle.Render(truncStr(h.Name, nameW)))
		gap := nameW - lipgloss.Width(truncStr(h.Name, nameW))
		b.WriteString(base.Render(strings.Repeat(" ", gap+1)))
		b.WriteString(streakStyle.Render(fmt.Sprintf("%*s", streakW, cli.FormatStreak(streak))))
		if i < len(a.habitList)-1 {
			b.WriteString("\n")
		}
	}

	return components.ContentCard(title, b.String(), outerW, focused)
}

func (a App) renderDayCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	focused := a.pane == paneTasks

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Mood  "))
	if a.annotation.Mood != "" {
		b.WriteString(valueStyle.Render(a.annotation.Mood.Label()))
	} else {
		b.WriteString(dimStyle.Render("not set (m)"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Note"))
	b.WriteString("\n")
	if strings.TrimSpace(a.annotation.Note) == "" {
		b.WriteString(dimStyle.Render("Nothing written yet (n)"))
	} else {
		b.WriteString(strings.Trim(cli.RenderMarkdown(a.annotation.Note, innerW), "\n"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Tasks"))
	if len(a.annotation.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No tasks (t to add)"))
	}
	for i, task := range a.annotation.Tasks {
		bg := t.Surface
		selected := focused && i == a.taskCur
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)
		marker := base.Render("  ")
		if selected {
			marker = base.Foreground(t.Accent).Bold(true).Render("› ")
		}
		box := base.Foreground(t.TextDim).Render("[ ] ")
		text := base.Foreground(t.TextPrimary).Render(truncStr(task.Text, innerW-6))
		if task.Completed {
			box = base.Foreground(t.Green).Render("[x] ")
			text = base.Foreground(t.TextDim).Strikethrough(true).Render(truncStr(task.Text, innerW-6))
		}
		b.WriteString("\n")
		b.WriteString(marker + box + text)
	}

	return components.ContentCard("Day · "+cli.FormatShortDate(a.viewedDay()), b.String(), outerW, focused)
}
