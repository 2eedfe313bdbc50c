// Package store persists session data in a simple key-value store.
//
// Values are opaque strings; the typed helpers in records.go define how the
// catalog, saved prompts and preferences are encoded under their keys.
package store

import (
	"fmt"
	"path/filepath"

	"github.com/pluqqy/tagpick/pkg/models"
)

// Keys used by tagpick
const (
	KeyShowDescriptions = "showDescriptions"
	KeyCatalog          = "customTags"
	KeySavedPrompts     = "savedPrompts"
	KeyTheme            = "theme"
	KeyAccentColor      = "accentColor"
)

// Store is the key-value contract consumed by the rest of the application
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Default file names inside the project directory
const (
	DefaultFileStoreName   = "store.yaml"
	DefaultSQLiteStoreName = "store.db"
)

// Open creates the backend selected in settings. Relative paths are resolved
// against dir.
func Open(settings models.StoreSettings, dir string) (Store, error) {
	path := settings.Path

	switch settings.Backend {
	case "", "file":
		if path == "" {
			path = DefaultFileStoreName
		}
		return NewFileStore(resolve(dir, path))
	case "sqlite":
		if path == "" {
			path = DefaultSQLiteStoreName
		}
		return NewSQLiteStore(resolve(dir, path))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", settings.Backend)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
