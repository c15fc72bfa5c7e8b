package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output adapts to light and dark terminals; the dashboard has its own
// themes.
var (
	rule    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B7B5AC", Dark: "#575653"})
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#24837B", Dark: "#3AA99F"})
	plain   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#100F0F", Dark: "#FFFCF0"})

	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#878580", Dark: "#6F6E69"})
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#66800B", Dark: "#879A39"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#BC5215", Dark: "#DA702C"})
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF3029", Dark: "#D14D41"})
)

// Table is a boxed report table. A row of exactly {"---"} draws a rule.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a report heading inside a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rule.GetForeground()).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(plain.Bold(true).Render(title))
}

// RenderTable renders t with box-drawing borders. The first column is left
// aligned and the rest, which hold counts and percentages, right aligned.
func RenderTable(t Table) string {
	cols := len(t.Headers)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	if cols == 0 {
		return ""
	}
	widths := columnWidths(t, cols)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + heading.Render(t.Title) + "\n")
	}
	b.WriteString(hrule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(tableRow(t.Headers, widths, heading, false))
		b.WriteString(hrule(widths, "├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(hrule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(tableRow(row, widths, plain, true))
	}
	b.WriteString(hrule(widths, "╰", "┴", "╯"))
	return b.String()
}

func columnWidths(t Table, cols int) []int {
	widths := make([]int, cols)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := lipgloss.Width(c); i < cols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		if !isSeparator(row) {
			measure(row)
		}
	}
	return widths
}

func hrule(widths []int, left, mid, right string) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return rule.Render(left+strings.Join(segs, mid)+right) + "\n"
}

// tableRow renders one bordered row. With numeric set, every column after
// the first is right aligned.
func tableRow(cells []string, widths []int, style lipgloss.Style, numeric bool) string {
	bar := rule.Render("│")
	var b strings.Builder
	b.WriteString(bar)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if numeric && i > 0 {
			cell = padLeft(cell, w)
		} else {
			cell = padRight(cell, w)
		}
		b.WriteString(style.Render(" " + cell + " "))
		b.WriteString(bar)
	}
	return b.String() + "\n"
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// padRight and padLeft pad by display width so styled or wide cells line up.
func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// RenderProgressBar renders a simple text progress bar.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s",
		mutedStyle.Render(bar),
		FormatNumber(int64(current)),
		FormatNumber(int64(total)),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderRatioBar renders a bar for a 0-1 ratio followed by its percentage.
// Ratios outside [0, 1] are capped for display only.
func RenderRatioBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := warnStyle
	if ratio >= 1 {
		style = doneStyle
	}
	return fmt.Sprintf("%s %3.0f%%", style.Render(bar), ratio*100)
}

// RenderStatus colors a goal status label.
func RenderStatus(status string) string {
	switch status {
	case "Completed":
		return doneStyle.Render(status)
	case "Overdue":
		return overdueStyle.Render(status)
	default:
		return warnStyle.Render(status)
	}
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderHorizontalBar renders a labelled horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	bar := strings.Repeat("█", barLen)
	return fmt.Sprintf("  %s %s", label, doneStyle.Render(bar))
}
