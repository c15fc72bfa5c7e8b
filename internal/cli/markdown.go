package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders note text as terminal markdown wrapped at width.
// Falls back to the raw text if the renderer cannot be built.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
