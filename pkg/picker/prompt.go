package picker

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/composer"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/store"
)

// AddTag appends tag to the prompt; a tag already present is skipped silently
func (c *Controller) AddTag(tag string) error {
	changed, err := c.state.Prompt.AddTag(tag)
	if err != nil {
		return c.fail(err)
	}
	if changed {
		c.success(strings.TrimSpace(tag) + " added")
	}
	return nil
}

// RemoveLastTag removes the most recently added tag
func (c *Controller) RemoveLastTag() error {
	removed, err := c.state.Prompt.RemoveLastTag()
	if err != nil {
		return c.fail(err)
	}
	c.success("Removed: " + removed)
	return nil
}

// ClearPrompt empties the prompt
func (c *Controller) ClearPrompt() {
	c.state.Prompt.Clear()
	c.success("Cleared")
}

// SetPromptText replaces the prompt with text typed directly by the user
func (c *Controller) SetPromptText(text string) {
	c.state.Prompt.SetText(text)
}

// AddRandomTags adds a handful of random catalog tags. Tags already in the
// prompt are skipped, so fewer may be added.
func (c *Controller) AddRandomTags() (int, error) {
	flat := c.state.Catalog.Flat()
	if len(flat) == 0 {
		return 0, c.fail(models.ErrCatalogEmpty)
	}

	added := 0
	for _, entry := range composer.PickRandom(flat, c.randomCount, c.rng) {
		changed, err := c.state.Prompt.AddTag(entry.Tag)
		if err != nil {
			continue
		}
		if changed {
			added++
		}
	}

	c.success(fmt.Sprintf("Added %d random tags", added))
	return added, nil
}

// SavePrompt stores the current prompt under name, overwriting any previous one
func (c *Controller) SavePrompt(name string) error {
	name = strings.TrimSpace(name)
	text := strings.TrimSpace(c.state.Prompt.Text())

	if name == "" {
		return c.fail(models.ErrEmptyPromptName)
	}
	if text == "" {
		return c.fail(models.ErrEmptyPrompt)
	}

	previous, existed := c.state.Prompts[name]
	c.state.Prompts[name] = text

	if err := store.SavePrompts(c.store, c.state.Prompts); err != nil {
		if existed {
			c.state.Prompts[name] = previous
		} else {
			delete(c.state.Prompts, name)
		}
		c.logger.Error("failed to save prompt", zap.String("name", name), zap.Error(err))
		return c.fail(fmt.Errorf("failed to save prompt: %w", err))
	}

	c.success(fmt.Sprintf("%q saved", name))
	return nil
}

// LoadPrompt replaces the current prompt with a saved one
func (c *Controller) LoadPrompt(name string) error {
	text, ok := c.state.Prompts[name]
	if !ok || name == "" {
		return c.fail(models.ErrPromptNotFound)
	}

	c.state.Prompt.SetText(text)
	c.success(fmt.Sprintf("%q loaded", name))
	return nil
}

// DeletePrompt removes a saved prompt
func (c *Controller) DeletePrompt(name string) error {
	if name == "" {
		return c.fail(models.ErrPromptNameMissing)
	}

	text, ok := c.state.Prompts[name]
	if !ok {
		return c.fail(models.ErrPromptNotFound)
	}

	delete(c.state.Prompts, name)
	if err := store.SavePrompts(c.store, c.state.Prompts); err != nil {
		c.state.Prompts[name] = text
		c.logger.Error("failed to delete prompt", zap.String("name", name), zap.Error(err))
		return c.fail(fmt.Errorf("failed to delete prompt: %w", err))
	}

	c.success(fmt.Sprintf("%q deleted", name))
	return nil
}

// SavedPrompt returns the text saved under name
func (c *Controller) SavedPrompt(name string) (string, bool) {
	text, ok := c.state.Prompts[name]
	return text, ok
}

// SavedPromptNames lists saved prompts alphabetically
func (c *Controller) SavedPromptNames() []string {
	return c.state.Prompts.Names()
}

// CopyPrompt copies the current prompt to the clipboard
func (c *Controller) CopyPrompt() error {
	text := c.state.Prompt.Text()
	if strings.TrimSpace(text) == "" {
		return c.fail(models.ErrEmptyPrompt)
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		return c.fail(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	c.success("Copied to clipboard")
	return nil
}

// CopySavedPrompt copies a saved prompt to the clipboard
func (c *Controller) CopySavedPrompt(name string) error {
	text, ok := c.state.Prompts[name]
	if !ok {
		return c.fail(models.ErrPromptNotFound)
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		return c.fail(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	c.success(fmt.Sprintf("%q copied to clipboard", name))
	return nil
}
