package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel asks a yes/no question before a destructive action
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowInline activates the confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the question centered in width
func (m *ConfirmationModel) View(styles Styles, width int) string {
	if !m.active {
		return ""
	}

	yes, no := styles.Good, styles.Danger
	if m.destructive {
		yes, no = styles.Danger, styles.Good
	}
	options := fmt.Sprintf("[%s/%s]", yes.Bold(true).Render("y"), no.Bold(true).Render("n"))
	message := styles.Warning.Bold(true).Render(m.message) + " " + options

	if width > 0 && lipgloss.Width(message) < width {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(message)
	}
	return message
}
