package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is a key binding with an optional per-OS alternative.
// Default always works; the alternative covers terminals that swallow it.
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string
}

// Get returns the binding advertised on os
func (s ShortcutKey) Get(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether key triggers the shortcut on any OS
func (s ShortcutKey) Matches(key string) bool {
	if key == "" {
		return false
	}
	return key == s.Default || key == s.Mac || key == s.Linux || key == s.Windows
}

// Shortcuts are the global key bindings of the app. They are checked before
// the focused editor sees a key, so none of them may shadow a textinput or
// textarea editing key.
var Shortcuts = struct {
	Quit         ShortcutKey
	Random       ShortcutKey
	Save         ShortcutKey
	Accent       ShortcutKey
	Copy         ShortcutKey
	Import       ShortcutKey
	DefaultTags  ShortcutKey
	DanbooruTags ShortcutKey
	Theme        ShortcutKey
	Descriptions ShortcutKey
	Clear        ShortcutKey
}{
	Quit:   ShortcutKey{Default: "ctrl+c"},
	Random: ShortcutKey{Default: "ctrl+r"},
	Save: ShortcutKey{
		Linux:   "alt+s", // ctrl+s is XOFF unless the tty runs with -ixon
		Default: "ctrl+s",
	},
	Accent:       ShortcutKey{Default: "f4"},
	Copy:         ShortcutKey{Default: "ctrl+y"},
	Import:       ShortcutKey{Default: "ctrl+o"},
	DefaultTags:  ShortcutKey{Default: "ctrl+l"},
	DanbooruTags: ShortcutKey{Default: "ctrl+g"},
	Theme:        ShortcutKey{Default: "f3"},
	Descriptions: ShortcutKey{Default: "f2"},
	Clear:        ShortcutKey{Default: "ctrl+x"},
}

// FormatShortcutForHelp formats a binding for the help line
func FormatShortcutForHelp(key ShortcutKey, os OSType) string {
	shortcut := key.Get(os)
	if os == OSMac {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}

// shortcutHelp lists the global bindings in help line order
func shortcutHelp(os OSType) string {
	entries := []struct {
		key  ShortcutKey
		name string
	}{
		{Shortcuts.Random, "random"},
		{Shortcuts.Save, "save"},
		{Shortcuts.Copy, "copy"},
		{Shortcuts.Clear, "clear"},
		{Shortcuts.Import, "import"},
		{Shortcuts.DefaultTags, "default tags"},
		{Shortcuts.DanbooruTags, "danbooru"},
		{Shortcuts.Descriptions, "desc"},
		{Shortcuts.Theme, "theme"},
		{Shortcuts.Accent, "accent"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, FormatShortcutForHelp(e.key, os)+" "+e.name)
	}
	return strings.Join(parts, " · ")
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage(os OSType) string {
	switch os {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S in your terminal, or use Alt+S"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}
