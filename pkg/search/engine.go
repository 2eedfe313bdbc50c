package search

import (
	"strings"

	"github.com/pluqqy/tagpick/pkg/models"
)

// indexedEntry caches the lower-cased fields of a catalog entry
type indexedEntry struct {
	entry     models.TagEntry
	category  string
	lowerTag  string
	lowerDesc string
}

// Match is a search hit together with the category it came from
type Match struct {
	Entry    models.TagEntry
	Category string
}

// Engine answers substring queries over a catalog's flat index.
// An Engine is immutable; a new catalog needs a new Engine.
type Engine struct {
	entries []indexedEntry
}

// NewEngine indexes the catalog in flat-index order
func NewEngine(catalog *models.Catalog) *Engine {
	e := &Engine{}
	for _, category := range catalog.Categories() {
		for _, entry := range category.Tags {
			e.entries = append(e.entries, indexedEntry{
				entry:     entry,
				category:  category.Name,
				lowerTag:  strings.ToLower(entry.Tag),
				lowerDesc: strings.ToLower(entry.Desc),
			})
		}
	}
	return e
}

// Len returns the number of indexed entries
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return len(e.entries)
}

// Search returns every entry whose tag or description contains query,
// ignoring case, in flat-index order. An empty query matches nothing.
func (e *Engine) Search(query string) []models.TagEntry {
	if e == nil || len(query) < 1 {
		return nil
	}

	needle := strings.ToLower(query)
	var results []models.TagEntry
	for _, ie := range e.entries {
		if ie.matches(needle) {
			results = append(results, ie.entry)
		}
	}
	return results
}

// Query evaluates a parsed query. A category condition restricts the
// candidates; an empty text with a category lists the whole category.
func (e *Engine) Query(q Query) []Match {
	if e == nil || (q.Text == "" && q.Category == "") {
		return nil
	}

	needle := strings.ToLower(q.Text)
	category := strings.ToLower(q.Category)

	var results []Match
	for _, ie := range e.entries {
		if category != "" && strings.ToLower(ie.category) != category {
			continue
		}
		if needle != "" && !ie.matches(needle) {
			continue
		}
		results = append(results, Match{Entry: ie.entry, Category: ie.category})
	}
	return results
}

func (ie indexedEntry) matches(needle string) bool {
	if strings.Contains(ie.lowerTag, needle) {
		return true
	}
	return ie.lowerDesc != "" && strings.Contains(ie.lowerDesc, needle)
}
