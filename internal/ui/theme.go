package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dleamy/daila/internal/canvas"
	"github.com/dleamy/daila/internal/config"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
	Title         lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Success:       lipgloss.Color("10"),
		Title:         lipgloss.Color("11"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Success:       lipgloss.Color("2"),
		Title:         lipgloss.Color("130"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Success:       lipgloss.Color("#50FA7B"),
		Title:         lipgloss.Color("#F1FA8C"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	"ayu-dark": {
		Primary:       lipgloss.Color("#BFBDB6"),
		Secondary:     lipgloss.Color("#565B66"),
		Accent:        lipgloss.Color("#E6B450"),
		Muted:         lipgloss.Color("#565B66"),
		Danger:        lipgloss.Color("#D95757"),
		Success:       lipgloss.Color("#7FD962"),
		Title:         lipgloss.Color("#FFB454"),
		Background:    lipgloss.Color("#0D1017"),
		MarkdownStyle: "dark",
	},
	"ayu-light": {
		Primary:       lipgloss.Color("#575F66"),
		Secondary:     lipgloss.Color("#8A9199"),
		Accent:        lipgloss.Color("#F2AE49"),
		Muted:         lipgloss.Color("#8A9199"),
		Danger:        lipgloss.Color("#E65050"),
		Success:       lipgloss.Color("#6CBF43"),
		Title:         lipgloss.Color("#FA8D3E"),
		Background:    lipgloss.Color("#FAFAFA"),
		MarkdownStyle: "light",
	},
	"catppuccin-mocha": {
		Primary:       lipgloss.Color("#CDD6F4"),
		Secondary:     lipgloss.Color("#585B70"),
		Accent:        lipgloss.Color("#CBA6F7"),
		Muted:         lipgloss.Color("#6C7086"),
		Danger:        lipgloss.Color("#F38BA8"),
		Success:       lipgloss.Color("#A6E3A1"),
		Title:         lipgloss.Color("#F9E2AF"),
		Background:    lipgloss.Color("#1E1E2E"),
		MarkdownStyle: "dark",
	},
	"catppuccin-latte": {
		Primary:       lipgloss.Color("#4C4F69"),
		Secondary:     lipgloss.Color("#9CA0B0"),
		Accent:        lipgloss.Color("#8839EF"),
		Muted:         lipgloss.Color("#9CA0B0"),
		Danger:        lipgloss.Color("#D20F39"),
		Success:       lipgloss.Color("#40A02B"),
		Title:         lipgloss.Color("#DF8E1D"),
		Background:    lipgloss.Color("#EFF1F5"),
		MarkdownStyle: "light",
	},
	"gruvbox-dark": {
		Primary:       lipgloss.Color("#EBDBB2"),
		Secondary:     lipgloss.Color("#665C54"),
		Accent:        lipgloss.Color("#FABD2F"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#FB4934"),
		Success:       lipgloss.Color("#B8BB26"),
		Title:         lipgloss.Color("#FABD2F"),
		Background:    lipgloss.Color("#282828"),
		MarkdownStyle: "dark",
	},
	"gruvbox-light": {
		Primary:       lipgloss.Color("#3C3836"),
		Secondary:     lipgloss.Color("#A89984"),
		Accent:        lipgloss.Color("#D79921"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#CC241D"),
		Success:       lipgloss.Color("#98971A"),
		Title:         lipgloss.Color("#B57614"),
		Background:    lipgloss.Color("#FBF1C7"),
		MarkdownStyle: "light",
	},
}

// PresetNames lists the built-in theme presets.
func PresetNames() []string {
	return []string{
		"default-dark", "default-light", "dracula", "ayu-dark", "ayu-light",
		"catppuccin-mocha", "catppuccin-latte", "gruvbox-dark", "gruvbox-light",
	}
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Secondary, cfg.Secondary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Danger, cfg.Danger)
	override(&theme.Success, cfg.Success)
	override(&theme.Title, cfg.Title)
	override(&theme.Background, cfg.Background)
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

// DangerStyle returns a lipgloss style for warnings/delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// SuccessStyle returns a lipgloss style for completed items.
func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

// Cell styles for drawing into a canvas.Buffer.

func (t Theme) base() canvas.Style {
	return canvas.Style{FG: t.Primary, BG: t.Background}
}

func (t Theme) text() canvas.Style { return canvas.Style{FG: t.Primary} }

func (t Theme) muted() canvas.Style { return canvas.Style{FG: t.Muted} }

func (t Theme) border() canvas.Style { return canvas.Style{FG: t.Secondary} }

func (t Theme) title() canvas.Style { return canvas.Style{FG: t.Title, Bold: true} }

func (t Theme) accent() canvas.Style { return canvas.Style{FG: t.Accent} }

func (t Theme) success() canvas.Style { return canvas.Style{FG: t.Success} }

func (t Theme) danger() canvas.Style { return canvas.Style{FG: t.Danger} }

// focused highlights a focused control: theme background on accent.
func (t Theme) focused() canvas.Style {
	return canvas.Style{FG: t.Background, BG: t.Accent, Bold: true}
}

// FullScreenStyle fills a width x height area with the theme colours.
func (t Theme) FullScreenStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.Background).
		Width(width).
		Height(height)
}
