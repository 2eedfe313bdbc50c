package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pluqqy/tagpick/pkg/models"
)

// LoadCatalog reads the persisted catalog. A missing record returns (nil, false, nil).
func LoadCatalog(s Store) (*models.Catalog, bool, error) {
	raw, ok, err := s.Get(KeyCatalog)
	if err != nil || !ok {
		return nil, false, err
	}

	catalog, err := models.DecodeCatalogRecord([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("failed to restore catalog: %w", err)
	}
	return catalog, true, nil
}

// SaveCatalog replaces the persisted catalog
func SaveCatalog(s Store, catalog *models.Catalog) error {
	raw, err := models.EncodeCatalogRecord(catalog)
	if err != nil {
		return err
	}
	return s.Set(KeyCatalog, string(raw))
}

// LoadPrompts reads the saved prompt map. A missing record yields an empty map.
func LoadPrompts(s Store) (models.SavedPrompts, error) {
	prompts := make(models.SavedPrompts)

	raw, ok, err := s.Get(KeySavedPrompts)
	if err != nil || !ok {
		return prompts, err
	}

	if err := json.Unmarshal([]byte(raw), &prompts); err != nil {
		return make(models.SavedPrompts), fmt.Errorf("failed to restore saved prompts: %w", err)
	}
	if prompts == nil {
		prompts = make(models.SavedPrompts)
	}
	return prompts, nil
}

// SavePrompts replaces the whole saved prompt map
func SavePrompts(s Store, prompts models.SavedPrompts) error {
	if prompts == nil {
		prompts = make(models.SavedPrompts)
	}
	raw, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("failed to encode saved prompts: %w", err)
	}
	return s.Set(KeySavedPrompts, string(raw))
}

// LoadPreferences reads the preference keys, filling gaps with defaults.
// Unreadable values fall back to their default.
func LoadPreferences(s Store) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	raw, ok, err := s.Get(KeyShowDescriptions)
	if err != nil {
		return prefs, err
	}
	if ok {
		if show, err := strconv.ParseBool(raw); err == nil {
			prefs.ShowDescriptions = show
		}
	}

	raw, ok, err = s.Get(KeyTheme)
	if err != nil {
		return prefs, err
	}
	if ok && raw != "" {
		prefs.Theme = raw
	}

	raw, ok, err = s.Get(KeyAccentColor)
	if err != nil {
		return prefs, err
	}
	if ok {
		if accent, err := models.NormalizeAccent(raw); err == nil {
			prefs.Accent = accent
		}
	}

	return prefs, nil
}

// SaveShowDescriptions persists the description toggle
func SaveShowDescriptions(s Store, show bool) error {
	return s.Set(KeyShowDescriptions, strconv.FormatBool(show))
}

// SaveTheme persists the theme name
func SaveTheme(s Store, theme string) error {
	return s.Set(KeyTheme, theme)
}

// SaveAccent persists the accent color; an empty value removes it
func SaveAccent(s Store, accent string) error {
	if accent == "" {
		return s.Remove(KeyAccentColor)
	}
	return s.Set(KeyAccentColor, accent)
}
