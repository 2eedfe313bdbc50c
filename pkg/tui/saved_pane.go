package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// SavedPane lists the saved prompts
type SavedPane struct {
	names    []string
	cursor   int
	isActive bool
	width    int
	height   int
}

// NewSavedPane creates an empty saved prompts pane
func NewSavedPane() *SavedPane {
	return &SavedPane{}
}

// SetNames replaces the listed names, keeping the cursor in range
func (s *SavedPane) SetNames(names []string) {
	s.names = names
	if s.cursor >= len(names) {
		s.cursor = max(len(names)-1, 0)
	}
}

// SetActive sets whether the pane is focused
func (s *SavedPane) SetActive(active bool) {
	s.isActive = active
}

// SetSize sets the outer size of the pane
func (s *SavedPane) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// MoveCursor moves the selection by delta, clamped
func (s *SavedPane) MoveCursor(delta int) {
	if len(s.names) == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.names)-1)
}

// Selected returns the name under the cursor
func (s *SavedPane) Selected() (string, bool) {
	if len(s.names) == 0 {
		return "", false
	}
	return s.names[s.cursor], true
}

// View renders the list. lookup returns the prompt text for a name.
func (s *SavedPane) View(styles Styles, lookup func(string) string) string {
	pane := styles.InactivePane
	if s.isActive {
		pane = styles.ActivePane
	}

	header := styles.PaneHeader.Render(fmt.Sprintf("Saved prompts (%d)", len(s.names)))

	var body string
	if len(s.names) == 0 {
		body = styles.Muted.Render("Nothing saved yet. ctrl+s saves the prompt.")
	} else {
		rows := max(s.height-3, 1)
		start := 0
		if s.cursor >= rows {
			start = s.cursor - rows + 1
		}
		end := min(start+rows, len(s.names))
		width := uint(max(s.width-6, 10))

		var b strings.Builder
		for i := start; i < end; i++ {
			name := s.names[i]
			line := name + styles.Muted.Render("  "+lookup(name))
			line = truncate.StringWithTail(line, width, "…")
			if i == s.cursor && s.isActive {
				line = styles.TagCursor.Render("› " + truncate.StringWithTail(name, width-2, "…"))
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			if i < end-1 {
				b.WriteString("\n")
			}
		}
		body = b.String()
	}

	return pane.
		Width(max(s.width-2, 10)).
		Height(max(s.height-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
