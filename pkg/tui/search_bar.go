package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/tagpick/pkg/search"
)

// SearchBar is the tag input with its suggestion dropdown
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
	rows     int // visible suggestion rows
}

// NewSearchBar creates a new search bar component
func NewSearchBar(rows int) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search tags or type a custom one..."
	ti.CharLimit = 200
	ti.Width = 50 // Default width, will be adjusted
	ti.Prompt = ""

	if rows <= 0 {
		rows = 8
	}

	return &SearchBar{
		input: ti,
		rows:  rows,
	}
}

// SetActive sets whether the search bar is the active pane
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders, padding and the icon
	s.input.Width = max(width-12, 10)
}

// Value returns the current input text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text and moves the cursor to the end
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
	s.input.CursorEnd()
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View(styles Styles) string {
	box := styles.InactivePane
	icon := styles.Muted.Render(" ⌕ ")
	if s.isActive {
		box = styles.ActivePane
		icon = lipgloss.NewStyle().
			Background(styles.Accent).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View())
	return box.Width(max(s.width-2, 10)).Render(content)
}

// SuggestionsView renders the dropdown for the current suggestions, or ""
// when it is hidden. The window scrolls to keep the highlight in view.
func (s *SearchBar) SuggestionsView(sug *search.Suggestions, showDesc bool, styles Styles) string {
	if sug == nil || !sug.Visible() {
		return ""
	}

	results := sug.Results()
	index := sug.Index()
	start, end := suggestionWindow(len(results), index, s.rows)

	innerWidth := max(s.width-6, 10)
	var b strings.Builder
	for i := start; i < end; i++ {
		entry := results[i]
		line := entry.Tag
		if showDesc && entry.Desc != "" {
			line += " " + styles.Description.Render("— "+entry.Desc)
		}
		line = truncate.StringWithTail(line, uint(innerWidth), "…")

		if i == index {
			b.WriteString(styles.SuggestionSelected.Render("› " + line))
		} else {
			b.WriteString(styles.Suggestion.Render("  " + line))
		}
		b.WriteString("\n")
	}

	position := "-"
	if index != search.NoSelection {
		position = fmt.Sprint(index + 1)
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%s/%d  ↑/↓ select · tab complete · enter add · esc close", position, len(results))))

	return styles.SuggestionBox.Width(max(s.width-4, 10)).Render(b.String())
}

// suggestionWindow returns the [start, end) range of rows to show
func suggestionWindow(total, index, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}

	start := 0
	if index >= rows {
		start = index - rows + 1
	}
	return start, start + rows
}
