// Package composer assembles selected tags into a comma-separated prompt.
package composer

import (
	"strings"
	"unicode/utf8"

	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/utils"
)

// Separator joins tags in the prompt text
const Separator = ", "

// Prompt is the ordered list of distinct tags and the text derived from it.
// The text may also be edited directly with SetText.
type Prompt struct {
	tags []string
	text string
}

// Counters summarize the prompt text
type Counters struct {
	Tags       int
	Characters int
	Tokens     int
}

// NewPrompt creates an empty prompt
func NewPrompt() *Prompt {
	return &Prompt{}
}

// ParsePrompt builds a prompt from existing text
func ParsePrompt(text string) *Prompt {
	p := NewPrompt()
	p.SetText(text)
	return p
}

// AddTag appends tag unless it is already present. It reports whether the
// prompt changed; a duplicate is not an error.
func (p *Prompt) AddTag(tag string) (bool, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false, models.ErrEmptyTag
	}

	if p.Contains(tag) {
		return false, nil
	}

	p.tags = append(p.tags, tag)
	p.text = strings.Join(p.tags, Separator)
	return true, nil
}

// RemoveLastTag pops the most recently added tag
func (p *Prompt) RemoveLastTag() (string, error) {
	if len(p.tags) == 0 {
		return "", models.ErrNoTagsToRemove
	}

	last := p.tags[len(p.tags)-1]
	p.tags = p.tags[:len(p.tags)-1]
	p.text = strings.Join(p.tags, Separator)
	return last, nil
}

// Clear empties the prompt
func (p *Prompt) Clear() {
	p.tags = nil
	p.text = ""
}

// SetText replaces the raw text and re-derives the tag list from it
func (p *Prompt) SetText(text string) {
	p.text = text
	p.tags = splitTags(text)
}

// Contains reports whether tag is in the prompt (case-sensitive)
func (p *Prompt) Contains(tag string) bool {
	for _, t := range p.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Text returns the prompt text
func (p *Prompt) Text() string {
	return p.text
}

// Tags returns a copy of the tag list
func (p *Prompt) Tags() []string {
	tags := make([]string, len(p.tags))
	copy(tags, p.tags)
	return tags
}

// IsEmpty reports whether the prompt has no tags
func (p *Prompt) IsEmpty() bool {
	return len(p.tags) == 0
}

// Counters computes the tag, character and token counts of the raw text
func (p *Prompt) Counters() Counters {
	tags := 0
	for _, segment := range strings.Split(p.text, ",") {
		if strings.TrimSpace(segment) != "" {
			tags++
		}
	}

	return Counters{
		Tags:       tags,
		Characters: utf8.RuneCountInString(p.text),
		Tokens:     utils.EstimateTokens(p.text),
	}
}

func splitTags(text string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, segment := range strings.Split(text, ",") {
		tag := strings.TrimSpace(segment)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
