package picker

import (
	"fmt"
	"strings"

	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/store"
)

// SetShowDescriptions toggles and persists description visibility.
// Turning descriptions on fails when the catalog has none.
func (c *Controller) SetShowDescriptions(show bool) error {
	if show && !c.state.Catalog.DescriptionsAvailable() {
		return c.fail(models.ErrNoDescriptions)
	}

	if err := store.SaveShowDescriptions(c.store, show); err != nil {
		return c.fail(fmt.Errorf("failed to save preference: %w", err))
	}
	c.state.Prefs.ShowDescriptions = show
	return nil
}

// DescriptionsVisible reports whether descriptions should be rendered
func (c *Controller) DescriptionsVisible() bool {
	return c.state.Prefs.ShowDescriptions && c.state.Catalog.DescriptionsAvailable()
}

// SetTheme selects and persists a theme
func (c *Controller) SetTheme(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || !c.knownTheme(name) {
		return c.fail(models.ErrUnknownTheme)
	}

	if err := store.SaveTheme(c.store, name); err != nil {
		return c.fail(fmt.Errorf("failed to save theme: %w", err))
	}
	c.state.Prefs.Theme = name
	return nil
}

func (c *Controller) knownTheme(name string) bool {
	if len(c.themes) == 0 {
		return true
	}
	for _, theme := range c.themes {
		if theme == name {
			return true
		}
	}
	return false
}

// SetAccent overrides the theme accent. Empty input clears the override.
func (c *Controller) SetAccent(value string) error {
	if strings.TrimSpace(value) == "" {
		return c.ClearAccent()
	}

	accent, err := models.NormalizeAccent(value)
	if err != nil {
		return c.fail(err)
	}

	if err := store.SaveAccent(c.store, accent); err != nil {
		return c.fail(fmt.Errorf("failed to save accent color: %w", err))
	}
	c.state.Prefs.Accent = accent
	return nil
}

// ClearAccent removes the accent override
func (c *Controller) ClearAccent() error {
	if err := store.SaveAccent(c.store, ""); err != nil {
		return c.fail(fmt.Errorf("failed to clear accent color: %w", err))
	}
	c.state.Prefs.Accent = ""
	return nil
}
