package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// viewed date and an optional flash message on the right.
func RenderStatusBar(width int, hints, date, flash string, flashIsErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dateStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	flashStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if flashIsErr {
		flashStyle = flashStyle.Foreground(t.Red)
	}

	left := base.Render(" " + hints)
	right := ""
	if flash != "" {
		right = flashStyle.Render(flash) + base.Render("  ")
	}
	right += dateStyle.Render(date) + base.Render(" ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return left + base.Render(strings.Repeat(" ", padding)) + right
}
