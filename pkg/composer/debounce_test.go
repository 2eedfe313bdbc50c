package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDebouncer() (*BackspaceDebouncer, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	d := NewBackspaceDebouncer(300 * time.Millisecond)
	d.SetClock(clock.Now)
	return d, clock
}

func TestDebouncerFirstPressFires(t *testing.T) {
	d, _ := newTestDebouncer()

	assert.True(t, d.Press())
	assert.True(t, d.Armed())
	assert.Equal(t, 1, d.Count())
}

func TestDebouncerSuppressesBurst(t *testing.T) {
	d, clock := newTestDebouncer()

	assert.True(t, d.Press())
	for i := 0; i < 10; i++ {
		clock.Advance(50 * time.Millisecond)
		assert.False(t, d.Press(), "held key press %d must not remove", i)
	}
	assert.Equal(t, 11, d.Count())

	// The burst lasted 500ms; only inactivity ends it
	clock.Advance(299 * time.Millisecond)
	assert.True(t, d.Armed())
	clock.Advance(time.Millisecond)
	assert.False(t, d.Armed())
	assert.Equal(t, 0, d.Count())

	assert.True(t, d.Press())
}

func TestDebouncerIsolatedPresses(t *testing.T) {
	d, clock := newTestDebouncer()

	for i := 0; i < 3; i++ {
		assert.True(t, d.Press())
		clock.Advance(400 * time.Millisecond)
	}
}

func TestDebouncerReset(t *testing.T) {
	d, _ := newTestDebouncer()
	d.Press()
	d.Reset()
	assert.False(t, d.Armed())
	assert.True(t, d.Press())
}

func TestDebouncerDefaultWindow(t *testing.T) {
	d := NewBackspaceDebouncer(0)
	assert.Equal(t, DefaultBackspaceWindow, d.window)
}
