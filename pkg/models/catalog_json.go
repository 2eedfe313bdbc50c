package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// CatalogRecord is the persisted envelope for the active catalog
type CatalogRecord struct {
	Format Format          `json:"format"`
	Data   json.RawMessage `json:"data"`
}

// DecodeCategories parses a JSON object of category name to tag entries,
// keeping the categories in document order.
func DecodeCategories(data []byte) ([]Category, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("catalog JSON must be an object of categories")
	}

	var categories []Category
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid catalog JSON: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid category key %v", keyTok)
		}

		var tags []TagEntry
		if err := dec.Decode(&tags); err != nil {
			return nil, fmt.Errorf("invalid tags for category %q: %w", name, err)
		}
		categories = append(categories, Category{Name: name, Tags: tags})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after catalog JSON object")
	}

	return categories, nil
}

// MarshalJSON encodes the catalog as an ordered object of categories
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, cat := range c.Categories() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		tags := cat.Tags
		if tags == nil {
			tags = []TagEntry{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(encoded)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeCatalogRecord builds the persisted {format, data} envelope
func EncodeCatalogRecord(c *Catalog) ([]byte, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	record := CatalogRecord{
		Format: c.Format(),
		Data:   data,
	}
	return json.Marshal(record)
}

// DecodeCatalogRecord restores a catalog from its persisted envelope
func DecodeCatalogRecord(raw []byte) (*Catalog, error) {
	var record CatalogRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse catalog record: %w", err)
	}
	if !record.Format.Valid() {
		return nil, fmt.Errorf("unknown catalog format %q", record.Format)
	}

	categories, err := DecodeCategories(record.Data)
	if err != nil {
		return nil, err
	}
	return NewCatalog(record.Format, categories), nil
}
