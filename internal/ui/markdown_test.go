package ui

import (
	"strings"
	"testing"
)

func resetMarkdownCache() {
	markdownCache.renderer = nil
	markdownCache.width = 0
	markdownCache.style = ""
}

func TestRenderMarkdownWithStyleDark(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		width        int
		wantContains []string
	}{
		{
			name:         "plain text",
			input:        "Hello world",
			width:        80,
			wantContains: []string{"Hello world"},
		},
		{
			name:         "heading",
			input:        "# Activity report",
			width:        80,
			wantContains: []string{"Activity report"},
		},
		{
			name:         "table",
			input:        "| Activity | Days |\n|---|---:|\n| Reading | 12 |\n| Running | 3 |",
			width:        80,
			wantContains: []string{"Activity", "Reading", "12", "Running"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderMarkdownWithStyle(tt.input, tt.width, "dark"))
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("", 80); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownCachesRenderer(t *testing.T) {
	resetMarkdownCache()

	RenderMarkdownWithStyle("# One", 60, "dark")
	first := markdownCache.renderer
	if first == nil {
		t.Fatal("expected a cached renderer")
	}

	RenderMarkdownWithStyle("# Two", 60, "dark")
	if markdownCache.renderer != first {
		t.Error("expected renderer to be reused for same width and style")
	}

	RenderMarkdownWithStyle("# Three", 90, "dark")
	if markdownCache.renderer == first || markdownCache.width != 90 {
		t.Error("expected a new renderer after width change")
	}
}

func TestRenderMarkdownDefaults(t *testing.T) {
	resetMarkdownCache()

	RenderMarkdownWithStyle("text", 0, "")
	if markdownCache.width != defaultMarkdownWidth {
		t.Errorf("expected width %d, got %d", defaultMarkdownWidth, markdownCache.width)
	}
	if markdownCache.style != defaultMarkdownStyle {
		t.Errorf("expected style %q, got %q", defaultMarkdownStyle, markdownCache.style)
	}
}

func TestRenderMarkdownStyleChange(t *testing.T) {
	resetMarkdownCache()

	dark := RenderMarkdownWithStyle("# Test", 80, "dark")
	notty := RenderMarkdownWithStyle("# Test", 80, "notty")
	if dark == notty {
		t.Error("expected different output for different styles")
	}
}
