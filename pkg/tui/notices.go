package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagpick/pkg/picker"
)

// NoticeBuffer collects controller notices until the app shows them.
// It is only touched from the bubbletea event loop.
type NoticeBuffer struct {
	notices []picker.Notice
}

// NewNoticeBuffer creates an empty buffer
func NewNoticeBuffer() *NoticeBuffer {
	return &NoticeBuffer{}
}

// Notify implements picker.Notifier
func (b *NoticeBuffer) Notify(n picker.Notice) {
	b.notices = append(b.notices, n)
}

// Drain returns the buffered notices and empties the buffer
func (b *NoticeBuffer) Drain() []picker.Notice {
	notices := b.notices
	b.notices = nil
	return notices
}

// DefaultStatusDuration is how long a notice stays in the status bar
const DefaultStatusDuration = 3 * time.Second

// clearStatusMsg clears the status bar if no newer notice replaced it
type clearStatusMsg struct {
	seq int
}

// StatusManager shows one transient notice at a time
type StatusManager struct {
	current  *picker.Notice
	duration time.Duration
	seq      int
}

// NewStatusManager creates a status manager with the default duration
func NewStatusManager() *StatusManager {
	return &StatusManager{duration: DefaultStatusDuration}
}

// Show displays a notice and schedules its removal
func (sm *StatusManager) Show(n picker.Notice) tea.Cmd {
	sm.seq++
	sm.current = &n

	seq := sm.seq
	return tea.Tick(sm.duration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// handleClear removes the notice a clearStatusMsg was scheduled for
func (sm *StatusManager) handleClear(msg clearStatusMsg) {
	if msg.seq == sm.seq {
		sm.current = nil
	}
}

// Current returns the notice on display
func (sm *StatusManager) Current() (picker.Notice, bool) {
	if sm.current == nil {
		return picker.Notice{}, false
	}
	return *sm.current, true
}

// View renders the status line
func (sm *StatusManager) View(styles Styles) string {
	n, ok := sm.Current()
	if !ok {
		return ""
	}
	if n.IsError() {
		return styles.StatusError.Render("× " + n.Message)
	}
	return styles.StatusSuccess.Render("✓ " + n.Message)
}
