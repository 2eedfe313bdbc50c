package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCategoriesKeepsOrder(t *testing.T) {
	data := []byte(`{
		"Zebra": [{"tag": "stripes", "desc": "black and white"}],
		"Apple": [{"tag": "red", "desc": ""}, {"tag": "green", "desc": "unripe"}],
		"Mango": null
	}`)

	categories, err := DecodeCategories(data)
	require.NoError(t, err)

	want := []Category{
		{Name: "Zebra", Tags: []TagEntry{{Tag: "stripes", Desc: "black and white"}}},
		{Name: "Apple", Tags: []TagEntry{{Tag: "red"}, {Tag: "green", Desc: "unripe"}}},
		{Name: "Mango"},
	}
	if diff := cmp.Diff(want, categories); diff != "" {
		t.Errorf("DecodeCategories() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCategoriesRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `{"A": [`},
		{"array at top level", `[{"tag": "cat"}]`},
		{"category is object", `{"A": {"tag": "cat"}}`},
		{"tag is number", `{"A": [{"tag": 1, "desc": ""}]}`},
		{"trailing data", `{"A": []} {"B": []}`},
		{"empty input", ``},
		{"scalar", `"cat"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCategories([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCatalogRecordRoundTrip(t *testing.T) {
	original := NewCatalog(FormatCSV, []Category{
		{Name: DanbooruTagsCategory, Tags: []TagEntry{{Tag: "bear"}, {Tag: "fox"}, {Tag: "cat"}}},
	})

	raw, err := EncodeCatalogRecord(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"csv","data":{"Danbooru Tags":[{"tag":"bear","desc":""},{"tag":"fox","desc":""},{"tag":"cat","desc":""}]}}`, string(raw))

	restored, err := DecodeCatalogRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, FormatCSV, restored.Format())
	assert.False(t, restored.DescriptionsAvailable())
	if diff := cmp.Diff(original.Flat(), restored.Flat()); diff != "" {
		t.Errorf("flat index mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSONEmptyCategory(t *testing.T) {
	catalog := NewCatalog(FormatJSON, []Category{{Name: "Empty"}, {Name: "B", Tags: []TagEntry{{Tag: "x"}}}})

	raw, err := catalog.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Empty":[],"B":[{"tag":"x","desc":""}]}`, string(raw))
}

func TestDecodeCatalogRecordUnknownFormat(t *testing.T) {
	_, err := DecodeCatalogRecord([]byte(`{"format":"xml","data":{}}`))
	assert.Error(t, err)

	_, err = DecodeCatalogRecord([]byte(`not json`))
	assert.Error(t, err)
}
