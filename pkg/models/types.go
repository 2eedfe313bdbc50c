package models

import (
	"regexp"
	"sort"
	"strings"
)

// SavedPrompts maps a user-chosen name to a prompt string
type SavedPrompts map[string]string

// Names returns the saved prompt names sorted alphabetically
func (p SavedPrompts) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preferences holds the user-facing settings persisted in the key-value store
type Preferences struct {
	ShowDescriptions bool
	Theme            string
	Accent           string // empty means the theme's own accent
}

// DefaultTheme is used when no theme has been stored
const DefaultTheme = "sekiratte"

// DefaultPreferences returns the preferences of a fresh session
func DefaultPreferences() Preferences {
	return Preferences{
		ShowDescriptions: true,
		Theme:            DefaultTheme,
	}
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NormalizeAccent turns user input into a #rrggbb color.
// A missing '#' is added and three-digit shorthand is expanded.
func NormalizeAccent(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrInvalidAccent
	}

	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if len(value) == 4 {
		value = "#" + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2) + strings.Repeat(value[3:4], 2)
	}

	if !hexColorPattern.MatchString(value) {
		return "", ErrInvalidAccent
	}
	return strings.ToLower(value), nil
}
