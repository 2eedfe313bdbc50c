package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/tagpick/pkg/composer"
	"github.com/pluqqy/tagpick/pkg/utils"
)

const tokenBarWidth = 20

// PromptPane shows the assembled prompt. When focused the text can be edited directly.
type PromptPane struct {
	textarea textarea.Model
	isActive bool
	width    int
	height   int
}

// NewPromptPane creates an empty prompt pane
func NewPromptPane() *PromptPane {
	ta := textarea.New()
	ta.Placeholder = "Selected tags appear here"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0 // No limit
	ta.SetWidth(40)
	ta.SetHeight(4)
	ta.Blur()

	return &PromptPane{textarea: ta}
}

// SetText shows text, leaving the cursor alone when nothing changed
func (p *PromptPane) SetText(text string) {
	if p.textarea.Value() != text {
		p.textarea.SetValue(text)
	}
}

// Value returns the text in the editor
func (p *PromptPane) Value() string {
	return p.textarea.Value()
}

// SetActive focuses or blurs the editor
func (p *PromptPane) SetActive(active bool) tea.Cmd {
	p.isActive = active
	if active {
		return p.textarea.Focus()
	}
	p.textarea.Blur()
	return nil
}

// SetSize sets the outer size of the pane
func (p *PromptPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.textarea.SetWidth(max(width-4, 10))
	// header, counters and token bar take three lines
	p.textarea.SetHeight(max(height-5, 1))
}

// Update forwards messages to the editor
func (p *PromptPane) Update(msg tea.Msg) (*PromptPane, tea.Cmd) {
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	return p, cmd
}

// View renders the pane with the prompt counters
func (p *PromptPane) View(styles Styles, counters composer.Counters) string {
	pane := styles.InactivePane
	if p.isActive {
		pane = styles.ActivePane
	}

	header := styles.PaneHeader.Render("Prompt")
	stats := styles.Muted.Render(fmt.Sprintf("%d tags · %d chars · %s",
		counters.Tags, counters.Characters, utils.FormatTokenCount(counters.Tokens)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		p.textarea.View(),
		stats,
		renderTokenBar(styles, counters.Tokens),
	)

	return pane.
		Width(max(p.width-2, 10)).
		Height(max(p.height-2, 1)).
		Render(content)
}

// renderTokenBar shows how full the current encoder chunk is
func renderTokenBar(styles Styles, tokens int) string {
	percentage, chunks, status := utils.GetTokenLimitStatus(tokens)

	filled := percentage * tokenBarWidth / 100
	filled = min(max(filled, 0), tokenBarWidth)
	bar := strings.Repeat("■", filled) + strings.Repeat("□", tokenBarWidth-filled)

	style := styles.Good
	switch status {
	case "warning":
		style = styles.Warning
	case "danger":
		style = styles.Danger
	}

	label := fmt.Sprintf(" %d%%", percentage)
	if chunks > 1 {
		label += fmt.Sprintf(" of chunk %d", chunks)
	}
	return style.Render(bar) + styles.Muted.Render(label)
}
