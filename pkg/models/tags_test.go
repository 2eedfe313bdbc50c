package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalogFlatIndex(t *testing.T) {
	categories := []Category{
		{Name: "Animals", Tags: []TagEntry{{Tag: "cat", Desc: "a pet"}, {Tag: "dog"}}},
		{Name: "Weather", Tags: []TagEntry{{Tag: "rain"}}},
		{Name: "Empty"},
	}

	catalog := NewCatalog(FormatJSON, categories)

	want := []TagEntry{{Tag: "cat", Desc: "a pet"}, {Tag: "dog"}, {Tag: "rain"}}
	if diff := cmp.Diff(want, catalog.Flat()); diff != "" {
		t.Errorf("Flat() mismatch (-want +got):\n%s", diff)
	}

	if got := catalog.CategoryNames(); !cmp.Equal(got, []string{"Animals", "Weather", "Empty"}) {
		t.Errorf("CategoryNames() = %v", got)
	}

	if catalog.Len() != 3 {
		t.Errorf("Len() = %d, want 3", catalog.Len())
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	tags := []TagEntry{{Tag: "cat"}}
	catalog := NewCatalog(FormatTXT, []Category{{Name: CustomTagsCategory, Tags: tags}})

	tags[0].Tag = "mutated"

	if got := catalog.Flat()[0].Tag; got != "cat" {
		t.Errorf("catalog changed after caller mutated input: got %q", got)
	}
}

func TestNewCatalogDuplicateCategory(t *testing.T) {
	catalog := NewCatalog(FormatJSON, []Category{
		{Name: "A", Tags: []TagEntry{{Tag: "one"}}},
		{Name: "B", Tags: []TagEntry{{Tag: "two"}}},
		{Name: "A", Tags: []TagEntry{{Tag: "three"}}},
	})

	if got := catalog.CategoryNames(); !cmp.Equal(got, []string{"A", "B"}) {
		t.Errorf("CategoryNames() = %v, want [A B]", got)
	}

	tags, ok := catalog.Category("A")
	if !ok || len(tags) != 1 || tags[0].Tag != "three" {
		t.Errorf("Category(A) = %v, %v; want [three]", tags, ok)
	}

	want := []TagEntry{{Tag: "three"}, {Tag: "two"}}
	if diff := cmp.Diff(want, catalog.Flat()); diff != "" {
		t.Errorf("Flat() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptionsAvailable(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatTXT, false},
		{FormatCSV, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			catalog := NewCatalog(tt.format, nil)
			if got := catalog.DescriptionsAvailable(); got != tt.want {
				t.Errorf("DescriptionsAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilCatalog(t *testing.T) {
	var catalog *Catalog

	if !catalog.IsEmpty() {
		t.Error("nil catalog should be empty")
	}
	if catalog.DescriptionsAvailable() {
		t.Error("nil catalog should not offer descriptions")
	}
	if catalog.Flat() != nil {
		t.Error("nil catalog should have no flat index")
	}
}

func TestCategoryColor(t *testing.T) {
	for _, name := range []string{"Animals", "Custom Tags", "Danbooru Tags", ""} {
		color := CategoryColor(name)

		found := false
		for _, c := range DefaultColorPalette {
			if c == color {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("CategoryColor(%q) = %q, not in default palette", name, color)
		}

		if again := CategoryColor(name); again != color {
			t.Errorf("CategoryColor(%q) not consistent: %q != %q", name, color, again)
		}
	}

	if CategoryColor("Animals") != CategoryColor("ANIMALS") {
		t.Error("CategoryColor should ignore case")
	}
}
