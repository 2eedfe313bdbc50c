package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/tagpick/pkg/importer"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateImportFile checks that path is a readable file with a supported extension
func ValidateImportFile(path string) error {
	if _, err := importer.DetectFormat(path); err != nil {
		return fmt.Errorf("cannot import %s: supported extensions are .json, .txt and .csv", filepath.Base(path))
	}
	return ValidateFilePath(path)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidatePromptName validates a saved prompt name
func ValidatePromptName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("prompt name cannot be empty")
	}
	if strings.ContainsAny(name, "\n\r\t") {
		return fmt.Errorf("prompt name cannot contain line breaks or tabs")
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
