package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/tagpick/pkg/models"
)

// Theme is a named color palette
type Theme struct {
	Name       string
	Foreground string
	Muted      string
	Border     string
	Accent     string
	Selection  string
	Success    string
	Warning    string
	Error      string
}

var themes = []Theme{
	{
		Name:       models.DefaultTheme,
		Foreground: "#4c4f69",
		Muted:      "#8c8fa1",
		Border:     "#bcc0cc",
		Accent:     "#8839ef",
		Selection:  "#dce0e8",
		Success:    "#40a02b",
		Warning:    "#df8e1d",
		Error:      "#d20f39",
	},
	{
		Name:       "sekimocha",
		Foreground: "#cdd6f4",
		Muted:      "#7f849c",
		Border:     "#45475a",
		Accent:     "#cba6f7",
		Selection:  "#313244",
		Success:    "#a6e3a1",
		Warning:    "#f9e2af",
		Error:      "#f38ba8",
	},
	{
		Name:       "midnight",
		Foreground: "#d8dee9",
		Muted:      "#6c7a96",
		Border:     "#3b4252",
		Accent:     "#88c0d0",
		Selection:  "#2e3440",
		Success:    "#a3be8c",
		Warning:    "#ebcb8b",
		Error:      "#bf616a",
	},
	{
		Name:       "terminal",
		Foreground: "252",
		Muted:      "245",
		Border:     "240",
		Accent:     "170",
		Selection:  "236",
		Success:    "28",
		Warning:    "214",
		Error:      "196",
	},
}

// ThemeNames lists the available themes in display order
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
	}
	return names
}

// LookupTheme finds a theme by name, falling back to the default theme
func LookupTheme(name string) (Theme, bool) {
	for _, theme := range themes {
		if theme.Name == name {
			return theme, true
		}
	}
	return themes[0], false
}

// nextTheme returns the theme after name, wrapping around
func nextTheme(name string) string {
	for i, theme := range themes {
		if theme.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles are the lipgloss styles derived from a theme and accent
type Styles struct {
	Accent lipgloss.Color

	Title        lipgloss.Style
	Muted        lipgloss.Style
	Text         lipgloss.Style
	ActivePane   lipgloss.Style
	InactivePane lipgloss.Style
	PaneHeader   lipgloss.Style

	Tag         lipgloss.Style
	TagCursor   lipgloss.Style
	Description lipgloss.Style

	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
	SuggestionBox      lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style

	Good    lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

// NewStyles builds styles for a theme. A non-empty accent overrides the theme's own.
func NewStyles(theme Theme, accent string) Styles {
	accentColor := lipgloss.Color(theme.Accent)
	if accent != "" {
		accentColor = lipgloss.Color(accent)
	}
	fg := lipgloss.Color(theme.Foreground)
	muted := lipgloss.Color(theme.Muted)
	selection := lipgloss.Color(theme.Selection)

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Accent: accentColor,

		Title:        lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Text:         lipgloss.NewStyle().Foreground(fg),
		ActivePane:   pane.BorderForeground(accentColor),
		InactivePane: pane.BorderForeground(lipgloss.Color(theme.Border)),
		PaneHeader:   lipgloss.NewStyle().Foreground(accentColor).Bold(true),

		Tag: lipgloss.NewStyle().Foreground(fg),
		TagCursor: lipgloss.NewStyle().
			Foreground(accentColor).
			Background(selection).
			Bold(true),
		Description: lipgloss.NewStyle().Foreground(muted).Italic(true),

		Suggestion: lipgloss.NewStyle().Foreground(fg),
		SuggestionSelected: lipgloss.NewStyle().
			Foreground(accentColor).
			Background(selection).
			Bold(true),
		SuggestionBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accentColor).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)).Bold(true),
		Help:          lipgloss.NewStyle().Foreground(muted),

		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
	}
}

// CategoryHeader renders a category name in its palette color
func (s Styles) CategoryHeader(name string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.CategoryColor(name))).
		Bold(true)
}
