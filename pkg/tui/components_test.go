package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/tagpick/pkg/picker"
)

func TestSuggestionWindow(t *testing.T) {
	tests := []struct {
		name               string
		total, index, rows int
		wantStart, wantEnd int
	}{
		{name: "fits", total: 3, index: 1, rows: 8, wantStart: 0, wantEnd: 3},
		{name: "no highlight", total: 20, index: -1, rows: 8, wantStart: 0, wantEnd: 8},
		{name: "highlight inside first page", total: 20, index: 7, rows: 8, wantStart: 0, wantEnd: 8},
		{name: "highlight scrolls", total: 20, index: 12, rows: 8, wantStart: 5, wantEnd: 13},
		{name: "last", total: 20, index: 19, rows: 8, wantStart: 12, wantEnd: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := suggestionWindow(tt.total, tt.index, tt.rows)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestStatusManagerKeepsNewestNotice(t *testing.T) {
	sm := NewStatusManager()

	assert.NotNil(t, sm.Show(picker.Notice{Message: "first"}))
	sm.Show(picker.Notice{Message: "second"})

	sm.handleClear(clearStatusMsg{seq: 1})
	n, ok := sm.Current()
	assert.True(t, ok)
	assert.Equal(t, "second", n.Message)

	sm.handleClear(clearStatusMsg{seq: 2})
	_, ok = sm.Current()
	assert.False(t, ok)
}

func TestNoticeBufferDrain(t *testing.T) {
	b := NewNoticeBuffer()
	b.Notify(picker.Notice{Message: "a"})
	b.Notify(picker.Notice{Kind: picker.NoticeError, Message: "b"})

	drained := b.Drain()
	assert.Len(t, drained, 2)
	assert.True(t, drained[1].IsError())
	assert.Empty(t, b.Drain())
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, "sekiratte", names[0])

	theme, ok := LookupTheme("midnight")
	assert.True(t, ok)
	assert.Equal(t, "midnight", theme.Name)

	theme, ok = LookupTheme("missing")
	assert.False(t, ok)
	assert.Equal(t, names[0], theme.Name)

	assert.Equal(t, names[1], nextTheme(names[0]))
	assert.Equal(t, names[0], nextTheme(names[len(names)-1]))
	assert.Equal(t, names[0], nextTheme("missing"))
}

func TestTokenBar(t *testing.T) {
	styles := NewStyles(themes[len(themes)-1], "")
	assert.Contains(t, renderTokenBar(styles, 0), "0%")
	assert.Contains(t, renderTokenBar(styles, 150), "of chunk 2")
}

func TestConfirmation(t *testing.T) {
	m := NewConfirmation()
	confirmed := false
	m.ShowInline("Delete?", true, func() tea.Cmd { confirmed = true; return nil }, nil)

	assert.True(t, m.Active())
	assert.Contains(t, m.View(NewStyles(themes[0], ""), 0), "Delete?")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, m.Active())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.False(t, m.Active())
	assert.True(t, confirmed)
	assert.Empty(t, m.View(NewStyles(themes[0], ""), 0))
}
