package picker

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/pluqqy/tagpick/pkg/models"
)

// NoticeKind classifies a user-facing notice
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient message about the outcome of an action
type Notice struct {
	Kind    NoticeKind
	Message string
}

// IsError reports whether the notice describes a failure
func (n Notice) IsError() bool {
	return n.Kind == NoticeError
}

// Notifier receives notices as actions complete
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}

// Clipboard is where copied prompts go
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// userMessage turns an error into the text shown to the user
func userMessage(err error) string {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}
