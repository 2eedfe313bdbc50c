package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// TagpickDir is the project directory holding settings, the store and logs.
// It is relative to the working directory.
var TagpickDir = ".tagpick"

const (
	SettingsFile = "settings.yaml"
	ExportsDir   = "exports"
)

// InitProjectStructure creates the project directory and a default
// settings file if none exists yet
func InitProjectStructure() error {
	dirs := []string{
		TagpickDir,
		filepath.Join(TagpickDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(nil); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the project directory is present
func ProjectExists() bool {
	info, err := os.Stat(TagpickDir)
	return err == nil && info.IsDir()
}

// ProjectPath joins name onto the project directory. Absolute names are
// returned unchanged.
func ProjectPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(TagpickDir, name)
}

// SettingsPath returns the settings file location
func SettingsPath() string {
	return filepath.Join(TagpickDir, SettingsFile)
}

// WriteFile writes content to path, creating parent directories
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
