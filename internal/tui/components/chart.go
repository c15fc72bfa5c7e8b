package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// RateChart renders vertical bars for a series of completion rates in
// [0, 1] against a fixed 0-100% axis. labels, if given, must match values.
func RateChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	const yLabelW = 5
	n := len(values)
	chartW := width - yLabelW - 1
	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + n - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)
	partial := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := float64(row) / float64(height)
		bottom := float64(row-1) / float64(height)

		label := ""
		switch row {
		case height:
			label = "100%"
		case (height + 1) / 2:
			label = "50%"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW-1, label)))
		b.WriteString(axisStyle.Render(" │"))

		for i, v := range values {
			v = clamp01(v)
			if i > 0 {
				b.WriteString(blankStyle.Render(" "))
			}
			switch {
			case v >= top:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * 8)
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(partial[idx]), barW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW-1, "0")))
	b.WriteString(axisStyle.Render(" └" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		var lb strings.Builder
		for i, l := range labels {
			if i > 0 {
				lb.WriteString(" ")
			}
			lb.WriteString(fmt.Sprintf("%-*s", barW, truncate(l, barW)))
		}
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(lb.String()))
	}

	return b.String()
}
