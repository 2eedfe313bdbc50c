package search

import (
	"strings"

	"github.com/pluqqy/tagpick/pkg/models"
)

// NoSelection is the highlighted index when no suggestion is selected
const NoSelection = -1

// Suggestions is the keyboard navigation state over the current results.
// Create it with NewSuggestions.
type Suggestions struct {
	engine  *Engine
	query   string
	results []models.TagEntry
	index   int
	visible bool
}

// NewSuggestions creates navigation state bound to engine
func NewSuggestions(engine *Engine) *Suggestions {
	return &Suggestions{engine: engine, index: NoSelection}
}

// SetEngine swaps the index after a catalog replacement and re-runs the query
func (s *Suggestions) SetEngine(engine *Engine) {
	s.engine = engine
	s.Update(s.query)
}

// Update re-runs the search for query, discarding the previous results.
// The highlight always resets.
func (s *Suggestions) Update(query string) {
	s.query = query
	s.results = s.engine.Search(query)
	s.index = NoSelection
	s.visible = len(s.results) > 0
}

// Refresh re-runs the current query, used when the input regains focus
func (s *Suggestions) Refresh() {
	s.Update(s.query)
}

// Next moves the highlight down, wrapping to the first result
func (s *Suggestions) Next() {
	if !s.navigable() {
		return
	}
	s.index = (s.index + 1) % len(s.results)
}

// Prev moves the highlight up, wrapping to the last result
func (s *Suggestions) Prev() {
	if !s.navigable() {
		return
	}
	n := len(s.results)
	if s.index == NoSelection {
		s.index = n - 1
		return
	}
	s.index = (s.index - 1 + n) % n
}

func (s *Suggestions) navigable() bool {
	return s.visible && len(s.results) > 0
}

// Complete returns the highlighted tag for tab completion. The highlight and
// results are left as they are.
func (s *Suggestions) Complete() (string, bool) {
	entry, ok := s.Highlighted()
	if !ok || !s.visible {
		return "", false
	}
	return entry.Tag, true
}

// Accept resolves what Enter adds: the highlighted tag, or the trimmed input
// when nothing is highlighted. The surface is dismissed either way.
func (s *Suggestions) Accept(input string) string {
	value := strings.TrimSpace(input)
	if entry, ok := s.Highlighted(); ok && s.visible {
		value = entry.Tag
	}
	s.Clear()
	return value
}

// Clear forgets the query and results, as after a tag was added
func (s *Suggestions) Clear() {
	s.query = ""
	s.results = nil
	s.index = NoSelection
	s.visible = false
}

// Dismiss hides the surface without forgetting the query
func (s *Suggestions) Dismiss() {
	s.index = NoSelection
	s.visible = false
}

// Highlighted returns the entry under the highlight
func (s *Suggestions) Highlighted() (models.TagEntry, bool) {
	if s.index < 0 || s.index >= len(s.results) {
		return models.TagEntry{}, false
	}
	return s.results[s.index], true
}

// Index returns the highlighted index or NoSelection
func (s *Suggestions) Index() int {
	return s.index
}

// Visible reports whether the suggestion surface is shown
func (s *Suggestions) Visible() bool {
	return s.visible
}

// Results returns the current results
func (s *Suggestions) Results() []models.TagEntry {
	return s.results
}

// Query returns the query the results were computed for
func (s *Suggestions) Query() string {
	return s.query
}
