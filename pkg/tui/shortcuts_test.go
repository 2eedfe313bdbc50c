package tui

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
)

func TestOSFromGOOS(t *testing.T) {
	assert.Equal(t, OSMac, osFromGOOS("darwin"))
	assert.Equal(t, OSLinux, osFromGOOS("linux"))
	assert.Equal(t, OSWindows, osFromGOOS("windows"))
	assert.Equal(t, OSUnknown, osFromGOOS("plan9"))
}

func TestShortcutKey(t *testing.T) {
	tests := []struct {
		name string
		key  ShortcutKey
		os   OSType
		want string
	}{
		{name: "default only", key: ShortcutKey{Default: "ctrl+r"}, os: OSLinux, want: "ctrl+r"},
		{name: "linux alternative", key: Shortcuts.Save, os: OSLinux, want: "alt+s"},
		{name: "mac falls back", key: Shortcuts.Save, os: OSMac, want: "ctrl+s"},
		{name: "unknown os", key: Shortcuts.Save, os: OSUnknown, want: "ctrl+s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Get(tt.os))
		})
	}

	assert.True(t, Shortcuts.Save.Matches("ctrl+s"))
	assert.True(t, Shortcuts.Save.Matches("alt+s"))
	assert.False(t, Shortcuts.Save.Matches("s"))
	assert.False(t, Shortcuts.Random.Matches(""))
}

func TestFormatShortcutForHelp(t *testing.T) {
	assert.Equal(t, "M-s", FormatShortcutForHelp(Shortcuts.Save, OSLinux))
	assert.Equal(t, "^s", FormatShortcutForHelp(Shortcuts.Save, OSMac))
	assert.Equal(t, "⌥x", FormatShortcutForHelp(ShortcutKey{Mac: "alt+x", Default: "ctrl+x"}, OSMac))

	help := shortcutHelp(OSMac)
	assert.Contains(t, help, "^r random")
	assert.Contains(t, help, "f4 accent")
	assert.Contains(t, help, "^g danbooru")
}

func TestTerminalSetupMessage(t *testing.T) {
	assert.Contains(t, GetTerminalSetupMessage(OSLinux), "stty -ixon")
	assert.Empty(t, GetTerminalSetupMessage(OSMac))
}

func editorBindings() map[string]bool {
	keys := make(map[string]bool)
	for _, keyMap := range []any{textinput.DefaultKeyMap, textarea.DefaultKeyMap} {
		v := reflect.ValueOf(keyMap)
		for i := 0; i < v.NumField(); i++ {
			binding, ok := v.Field(i).Interface().(interface{ Keys() []string })
			if !ok {
				continue
			}
			for _, k := range binding.Keys() {
				keys[k] = true
			}
		}
	}
	return keys
}

func TestShortcutsLeaveEditingKeysAlone(t *testing.T) {
	editing := editorBindings()
	assert.True(t, editing["ctrl+k"])
	assert.True(t, editing["ctrl+e"])

	v := reflect.ValueOf(Shortcuts)
	for i := 0; i < v.NumField(); i++ {
		shortcut := v.Field(i).Interface().(ShortcutKey)
		for _, k := range []string{shortcut.Mac, shortcut.Linux, shortcut.Windows, shortcut.Default} {
			if k != "" {
				assert.False(t, editing[k], "%s uses editing key %s", v.Type().Field(i).Name, k)
			}
		}
	}
}
