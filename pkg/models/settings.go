package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Settings represents the application configuration
type Settings struct {
	Store   StoreSettings  `yaml:"store"`
	Sources SourceSettings `yaml:"sources"`
	UI      UISettings     `yaml:"ui"`
	Log     LogSettings    `yaml:"log"`
}

// StoreSettings selects the persistence backend
type StoreSettings struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite memory"`
	Path    string `yaml:"path"` // relative to the project directory; empty picks the backend default
}

// SourceSettings controls where bundled catalogs come from.
// Empty URLs fall back to the copies compiled into the binary.
type SourceSettings struct {
	DefaultJSONURL string        `yaml:"default_json_url" validate:"omitempty,url"`
	DefaultCSVURL  string        `yaml:"default_csv_url" validate:"omitempty,url"`
	CSVCategory    string        `yaml:"csv_category" validate:"required"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" validate:"gte=0"`
}

// UISettings controls UI behavior
type UISettings struct {
	RandomCount     int           `yaml:"random_count" validate:"min=1,max=50"`
	RenderBatchSize int           `yaml:"render_batch_size" validate:"min=1"`
	SuggestionRows  int           `yaml:"suggestion_rows" validate:"min=1,max=30"`
	BackspaceWindow time.Duration `yaml:"backspace_window" validate:"gt=0"`
}

// LogSettings controls logging output
type LogSettings struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Store: StoreSettings{
			Backend: "file",
			Path:    "",
		},
		Sources: SourceSettings{
			CSVCategory:  DanbooruTagsCategory,
			FetchTimeout: 15 * time.Second,
		},
		UI: UISettings{
			RandomCount:     5,
			RenderBatchSize: 100,
			SuggestionRows:  8,
			BackspaceWindow: 300 * time.Millisecond,
		},
		Log: LogSettings{
			File: "tagpick.log",
		},
	}
}

var settingsValidator = validator.New()

// Validate checks the settings against their constraints
func (s *Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
