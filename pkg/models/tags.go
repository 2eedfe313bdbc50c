package models

import (
	"hash/fnv"
	"strings"
)

// Format identifies the source format a catalog was imported from
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
)

// Synthetic category names used by the single-category formats
const (
	CustomTagsCategory   = "Custom Tags"
	DanbooruTagsCategory = "Danbooru Tags"
)

// Valid reports whether f is one of the known import formats
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatTXT, FormatCSV:
		return true
	}
	return false
}

// CarriesDescriptions reports whether catalogs of this format have real per-tag descriptions
func (f Format) CarriesDescriptions() bool {
	return f == FormatJSON
}

// TagEntry is a single selectable tag with an optional description
type TagEntry struct {
	Tag  string `json:"tag" yaml:"tag"`
	Desc string `json:"desc" yaml:"desc"`
}

// Category is a named, ordered group of tags
type Category struct {
	Name string
	Tags []TagEntry
}

// Catalog is the full categorized tag dataset currently loaded.
// A Catalog is never mutated after construction; a new import builds a new one.
type Catalog struct {
	format     Format
	categories []Category
	byName     map[string]int
	flat       []TagEntry
}

// NewCatalog builds a catalog and its flat index from ordered categories.
// A repeated category name keeps its first position and takes the later tags.
func NewCatalog(format Format, categories []Category) *Catalog {
	c := &Catalog{
		format: format,
		byName: make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		tags := make([]TagEntry, len(cat.Tags))
		copy(tags, cat.Tags)

		if idx, exists := c.byName[cat.Name]; exists {
			c.categories[idx].Tags = tags
			continue
		}
		c.byName[cat.Name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: cat.Name, Tags: tags})
	}

	c.rebuildIndex()
	return c
}

// EmptyCatalog returns a catalog with no categories
func EmptyCatalog() *Catalog {
	return NewCatalog(FormatJSON, nil)
}

// rebuildIndex recomputes the flat index from scratch
func (c *Catalog) rebuildIndex() {
	total := 0
	for _, cat := range c.categories {
		total += len(cat.Tags)
	}

	c.flat = make([]TagEntry, 0, total)
	for _, cat := range c.categories {
		c.flat = append(c.flat, cat.Tags...)
	}
}

// Format returns the format the catalog was imported from
func (c *Catalog) Format() Format {
	if c == nil {
		return FormatJSON
	}
	return c.format
}

// DescriptionsAvailable reports whether descriptions may be shown for this catalog
func (c *Catalog) DescriptionsAvailable() bool {
	if c == nil {
		return false
	}
	return c.format.CarriesDescriptions()
}

// Categories returns a copy of the ordered categories
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns the tags of a single category
func (c *Catalog) Category(name string) ([]TagEntry, bool) {
	if c == nil {
		return nil, false
	}
	idx, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.categories[idx].Tags, true
}

// CategoryNames returns category names in catalog order
func (c *Catalog) CategoryNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Flat returns the flat index: all tags in category-then-tag order.
// The returned slice must not be modified.
func (c *Catalog) Flat() []TagEntry {
	if c == nil {
		return nil
	}
	return c.flat
}

// Len returns the number of entries in the flat index
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.flat)
}

// IsEmpty reports whether the catalog has no tags at all
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// DefaultColorPalette provides a curated set of colors for category headers
// These colors are chosen for good contrast and accessibility
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// CategoryColor returns a stable palette color for a category name
func CategoryColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	hash := h.Sum32()

	return DefaultColorPalette[int(hash%uint32(len(DefaultColorPalette)))]
}
