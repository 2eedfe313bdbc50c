package picker

import (
	"strings"

	"github.com/pluqqy/tagpick/pkg/models"
)

// Search records the input text and recomputes suggestions
func (c *Controller) Search(query string) {
	c.state.Input = query
	c.state.Suggestions.Update(query)
}

// Focus re-shows suggestions for the text already in the input
func (c *Controller) Focus() {
	if c.state.Input != "" {
		c.state.Suggestions.Refresh()
	}
}

// Next highlights the next suggestion
func (c *Controller) Next() {
	c.state.Suggestions.Next()
}

// Prev highlights the previous suggestion
func (c *Controller) Prev() {
	c.state.Suggestions.Prev()
}

// Complete copies the highlighted suggestion into the input without adding it
func (c *Controller) Complete() bool {
	tag, ok := c.state.Suggestions.Complete()
	if ok {
		c.state.Input = tag
	}
	return ok
}

// Dismiss hides the suggestions
func (c *Controller) Dismiss() {
	c.state.Suggestions.Dismiss()
}

// Submit adds the highlighted suggestion, or the input text as a custom tag
func (c *Controller) Submit() error {
	if strings.TrimSpace(c.state.Input) == "" {
		return c.fail(models.ErrEmptyTag)
	}

	tag := c.state.Suggestions.Accept(c.state.Input)
	c.state.Input = ""
	return c.AddTag(tag)
}

// Backspace handles a backspace in the empty input. Only the first press of
// a burst removes a tag; it reports whether one was removed.
func (c *Controller) Backspace() (bool, error) {
	if c.state.Input != "" {
		return false, nil
	}
	if !c.debouncer.Press() {
		return false, nil
	}
	if err := c.RemoveLastTag(); err != nil {
		return false, err
	}
	return true, nil
}
