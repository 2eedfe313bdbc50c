package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/tagpick/pkg/models"
)

func animalsCatalog() *models.Catalog {
	return models.NewCatalog(models.FormatJSON, []models.Category{
		{Name: "Animals", Tags: []models.TagEntry{
			{Tag: "cat", Desc: "a pet"},
			{Tag: "dog", Desc: ""},
		}},
	})
}

func testCatalog() *models.Catalog {
	return models.NewCatalog(models.FormatJSON, []models.Category{
		{Name: "Hair", Tags: []models.TagEntry{
			{Tag: "red hair", Desc: "Crimson locks"},
			{Tag: "long hair", Desc: "Reaches the back"},
			{Tag: "ponytail"},
		}},
		{Name: "Eyes", Tags: []models.TagEntry{
			{Tag: "red eyes"},
			{Tag: "closed eyes", Desc: "Sleeping or blinking"},
		}},
		{Name: "Setting", Tags: []models.TagEntry{
			{Tag: "forest", Desc: "Trees, moss"},
			{Tag: "RED LIGHT DISTRICT"},
		}},
	})
}

func TestSearchAnimalsScenario(t *testing.T) {
	engine := NewEngine(animalsCatalog())

	assert.Equal(t, []models.TagEntry{{Tag: "cat", Desc: "a pet"}}, engine.Search("pet"))

	// "dog" has neither an "a" in its tag nor a description to match
	assert.Equal(t, []models.TagEntry{{Tag: "cat", Desc: "a pet"}}, engine.Search("a"))

	assert.Equal(t, []models.TagEntry{{Tag: "dog", Desc: ""}}, engine.Search("O"))
	assert.Nil(t, engine.Search("bird"))
}

func TestSearch(t *testing.T) {
	engine := NewEngine(testCatalog())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: nil},
		{name: "case insensitive across categories", query: "RED", want: []string{"red hair", "red eyes", "RED LIGHT DISTRICT"}},
		{name: "matches description", query: "crimson", want: []string{"red hair"}},
		{name: "matches tag or description", query: "back", want: []string{"long hair"}},
		{name: "no match", query: "zzz", want: nil},
		{name: "whitespace is literal", query: " ", want: []string{"red hair", "long hair", "red eyes", "closed eyes", "forest", "RED LIGHT DISTRICT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagsOf(engine.Search(tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchIsOrderedSubsequence(t *testing.T) {
	catalog := testCatalog()
	engine := NewEngine(catalog)
	flat := catalog.Flat()

	for _, query := range []string{"r", "e", "hair", "s", "o"} {
		results := engine.Search(query)

		// Every result appears in the flat index after the previous one
		pos := 0
		for _, r := range results {
			found := false
			for pos < len(flat) {
				if flat[pos] == r {
					found = true
					pos++
					break
				}
				pos++
			}
			assert.True(t, found, "query %q: %q out of order", query, r.Tag)
		}

		assert.Equal(t, results, engine.Search(query), "search must be deterministic")
	}
}

func TestEngineNilAndEmpty(t *testing.T) {
	var engine *Engine
	assert.Nil(t, engine.Search("a"))
	assert.Equal(t, 0, engine.Len())

	empty := NewEngine(models.EmptyCatalog())
	assert.Nil(t, empty.Search("a"))
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 7, NewEngine(testCatalog()).Len())
}

func TestQueryWithCategory(t *testing.T) {
	engine := NewEngine(testCatalog())

	got := engine.Query(Query{Category: "eyes", Text: "red"})
	assert.Equal(t, []Match{{Entry: models.TagEntry{Tag: "red eyes"}, Category: "Eyes"}}, got)

	all := engine.Query(Query{Category: "Hair"})
	assert.Len(t, all, 3)

	assert.Nil(t, engine.Query(Query{}))
	assert.Empty(t, engine.Query(Query{Category: "Missing", Text: "red"}))
}

func tagsOf(entries []models.TagEntry) []string {
	if entries == nil {
		return nil
	}
	tags := make([]string, len(entries))
	for i, e := range entries {
		tags[i] = e.Tag
	}
	return tags
}
