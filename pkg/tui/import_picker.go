package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/picker"
)

// importDoneMsg delivers a parsed catalog, or the reason it could not be parsed
type importDoneMsg struct {
	label  string
	result picker.ImportResult
	err    error
}

// importFileCmd reads and parses a user file off the event loop
func importFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := picker.ReadImport(path)
		return importDoneMsg{label: path, result: result, err: err}
	}
}

// fetchBundledCmd loads a bundled catalog off the event loop
func fetchBundledCmd(ctrl *picker.Controller, src importer.Source) tea.Cmd {
	return func() tea.Msg {
		result, err := ctrl.FetchBundled(context.Background(), src)
		return importDoneMsg{label: src.Name, result: result, err: err}
	}
}

// ImportPicker is the file browser used to choose a catalog file
type ImportPicker struct {
	picker filepicker.Model
	active bool
	width  int
	height int
}

// NewImportPicker creates a picker limited to importable files
func NewImportPicker() *ImportPicker {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".json", ".txt", ".csv"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false

	return &ImportPicker{picker: fp}
}

// Open shows the picker in dir
func (p *ImportPicker) Open(dir string) tea.Cmd {
	p.active = true
	p.picker.CurrentDirectory = dir
	return p.picker.Init()
}

// Close hides the picker
func (p *ImportPicker) Close() {
	p.active = false
}

// Active reports whether the picker is shown
func (p *ImportPicker) Active() bool {
	return p.active
}

// SetSize sets the outer size of the picker pane
func (p *ImportPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.picker.Height = max(height-4, 3)
}

// Update forwards msg to the picker. It reports the chosen path once a file is selected.
func (p *ImportPicker) Update(msg tea.Msg) (string, bool, tea.Cmd) {
	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)

	if didSelect, path := p.picker.DidSelectFile(msg); didSelect {
		p.active = false
		return path, true, cmd
	}
	return "", false, cmd
}

// View renders the picker pane
func (p *ImportPicker) View(styles Styles) string {
	header := styles.PaneHeader.Render("Import tags") +
		styles.Muted.Render(fmt.Sprintf("  %s", p.picker.CurrentDirectory))
	help := styles.Help.Render(".json .txt .csv · enter select · esc cancel")

	return styles.ActivePane.
		Width(max(p.width-2, 10)).
		Height(max(p.height-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, p.picker.View(), help))
}
