package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/internal/logger"
	"github.com/pluqqy/tagpick/pkg/files"
	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/picker"
	"github.com/pluqqy/tagpick/pkg/store"
)

// CommandContext manages project validation and the resources a command needs
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Debug       bool
	Ephemeral   bool // use an in-memory store
	LogToFile   bool
	Clipboard   picker.Clipboard // nil uses the system clipboard

	validated bool
	logger    *zap.Logger
	store     store.Store
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.TagpickDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'tagpick init' first", files.TagpickDir)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		// Use default settings if can't read
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Logger returns the command logger, creating it on first use. CLI commands
// log to stderr; the TUI logs to the configured file.
func (c *CommandContext) Logger() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}

	settings := c.LoadSettingsWithDefault()
	opts := logger.Options{Debug: c.Debug || settings.Log.Debug}
	if c.LogToFile && settings.Log.File != "" {
		opts.File = files.ProjectPath(settings.Log.File)
	}

	log, err := logger.New(opts)
	if err != nil {
		PrintWarning("Logging disabled: %v", err)
		log = zap.NewNop()
	}

	c.logger = log
	return log
}

// Store opens the configured key-value store
func (c *CommandContext) Store() (store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	settings := c.LoadSettingsWithDefault()
	storeSettings := settings.Store
	if c.Ephemeral {
		storeSettings.Backend = "memory"
	}

	s, err := store.Open(storeSettings, c.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	c.Logger().Debug("store opened", zap.String("backend", storeSettings.Backend))
	c.store = s
	return s, nil
}

// Fetcher creates a fetcher for the bundled catalogs
func (c *CommandContext) Fetcher() *importer.Fetcher {
	settings := c.LoadSettingsWithDefault()
	return importer.NewFetcher(settings.Sources.FetchTimeout, c.Logger().Named("importer"))
}

// BundledSource resolves a bundled source by name ("json" or "csv")
func (c *CommandContext) BundledSource(name string) (importer.Source, error) {
	settings := c.LoadSettingsWithDefault()

	switch strings.ToLower(name) {
	case "json", "default":
		return importer.DefaultJSONSource(settings.Sources.DefaultJSONURL), nil
	case "csv", "danbooru":
		return importer.DefaultCSVSource(settings.Sources.DefaultCSVURL, settings.Sources.CSVCategory), nil
	default:
		return importer.Source{}, fmt.Errorf("unknown bundled catalog %q (must be: json or csv)", name)
	}
}

// NewController builds a controller over the configured store and restores
// the previous session
func (c *CommandContext) NewController(notifier picker.Notifier, themes []string) (*picker.Controller, error) {
	s, err := c.Store()
	if err != nil {
		return nil, err
	}

	settings := c.LoadSettingsWithDefault()
	ctrl := picker.New(picker.Options{
		Store:           s,
		Notifier:        notifier,
		Clipboard:       c.Clipboard,
		Fetcher:         c.Fetcher(),
		Logger:          c.Logger().Named("picker"),
		Themes:          themes,
		RandomCount:     settings.UI.RandomCount,
		BackspaceWindow: settings.UI.BackspaceWindow,
	})

	if err := ctrl.Restore(); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return ctrl, nil
}

// Close releases the store and flushes the logger
func (c *CommandContext) Close() {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.Logger().Warn("failed to close store", zap.Error(err))
		}
		c.store = nil
	}
	logger.Sync(c.logger)
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	parts := strings.Fields(e.DefaultEditor)

	var editorCmd *exec.Cmd
	if len(parts) > 1 {
		editorCmd = exec.Command(parts[0], append(parts[1:], path)...)
	} else {
		editorCmd = exec.Command(e.DefaultEditor, path)
	}

	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// EditText opens content in the editor and returns what was saved
func (e *EditorLauncher) EditText(name, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", name)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmpFile.Name()
	defer os.Remove(path)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	tmpFile.Close()

	if err := e.OpenFile(path); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return strings.TrimSpace(string(edited)), nil
}
