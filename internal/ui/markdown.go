package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	defaultMarkdownWidth = 80
	defaultMarkdownStyle = "dark"
)

// markdownCache keeps the last glamour renderer; building one is slow.
var markdownCache struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = defaultMarkdownWidth
	}
	if style == "" {
		style = defaultMarkdownStyle
	}
	if markdownCache.renderer != nil && markdownCache.width == width && markdownCache.style == style {
		return markdownCache.renderer, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownCache.renderer = r
	markdownCache.width = width
	markdownCache.style = style
	return r, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour
// style. The content is returned unchanged if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := markdownRenderer(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders markdown with the "dark" style.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, defaultMarkdownStyle)
}
