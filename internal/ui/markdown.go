package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/muurk/learnquest/internal/logging"
)

// Markdown styles understood by RenderMarkdownStyle.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// RenderMarkdown renders md for a dark terminal, wrapped at width.
func RenderMarkdown(md string, width int) string {
	return RenderMarkdownStyle(md, width, StyleDark)
}

// RenderMarkdownStyle renders md with a glamour standard style. If
// rendering fails the source text is returned unchanged.
func RenderMarkdownStyle(md string, width int, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Warn("Markdown renderer unavailable", zap.String("style", style), zap.Error(err))
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		logging.Warn("Markdown render failed", zap.Error(err))
		return md
	}
	return strings.Trim(out, "\n")
}
