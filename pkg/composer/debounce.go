package composer

import "time"

// DefaultBackspaceWindow is the quiet period that ends a backspace burst
const DefaultBackspaceWindow = 300 * time.Millisecond

// BackspaceDebouncer decides which empty-input backspace presses remove a tag.
// The first press of a burst fires; presses while armed only extend the
// deadline. The debouncer disarms after a full window without presses.
type BackspaceDebouncer struct {
	window   time.Duration
	armed    bool
	deadline time.Time
	count    int
	now      func() time.Time
}

// NewBackspaceDebouncer creates a debouncer with the given window.
// A non-positive window uses DefaultBackspaceWindow.
func NewBackspaceDebouncer(window time.Duration) *BackspaceDebouncer {
	if window <= 0 {
		window = DefaultBackspaceWindow
	}
	return &BackspaceDebouncer{window: window, now: time.Now}
}

// SetClock replaces the time source
func (d *BackspaceDebouncer) SetClock(now func() time.Time) {
	d.now = now
}

// Press records a backspace and reports whether it should remove a tag
func (d *BackspaceDebouncer) Press() bool {
	now := d.now()

	if d.armed && now.Before(d.deadline) {
		d.count++
		d.deadline = now.Add(d.window)
		return false
	}

	d.armed = true
	d.count = 1
	d.deadline = now.Add(d.window)
	return true
}

// Armed reports whether a burst is in progress
func (d *BackspaceDebouncer) Armed() bool {
	return d.armed && d.now().Before(d.deadline)
}

// Count returns the number of presses in the current burst
func (d *BackspaceDebouncer) Count() int {
	if !d.Armed() {
		return 0
	}
	return d.count
}

// Reset disarms the debouncer
func (d *BackspaceDebouncer) Reset() {
	d.armed = false
	d.count = 0
	d.deadline = time.Time{}
}
