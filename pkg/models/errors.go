package models

import "fmt"

// FormatError reports an import payload that could not be parsed or is not supported.
// The previously loaded catalog is left untouched when one is returned.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("format error: %v", e.Err)
	}
	return fmt.Sprintf("format error in %s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError wraps err as a FormatError for the given source
func NewFormatError(source string, err error) *FormatError {
	return &FormatError{Source: source, Err: err}
}

// ValidationError reports a user action on missing or invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation errors surfaced to the user
var (
	ErrEmptyTag          = &ValidationError{Message: "Enter a tag"}
	ErrNoTagsToRemove    = &ValidationError{Message: "No tags to remove"}
	ErrEmptyPromptName   = &ValidationError{Message: "Enter prompt name"}
	ErrEmptyPrompt       = &ValidationError{Message: "Prompt is empty"}
	ErrPromptNotFound    = &ValidationError{Message: "Prompt not found"}
	ErrPromptNameMissing = &ValidationError{Message: "Prompt name not provided"}
	ErrCatalogEmpty      = &ValidationError{Message: "Load tags first"}
	ErrInvalidAccent     = &ValidationError{Message: "Invalid accent color"}
	ErrUnknownTheme      = &ValidationError{Message: "Unknown theme"}
	ErrNoDescriptions    = &ValidationError{Message: "Descriptions are not available for these tags"}
)
