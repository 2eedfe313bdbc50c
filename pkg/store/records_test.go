package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagpick/pkg/models"
)

func TestCatalogRoundTripPreservesOrder(t *testing.T) {
	s := NewMemoryStore()

	catalog := models.NewCatalog(models.FormatJSON, []models.Category{
		{Name: "Zoo", Tags: []models.TagEntry{{Tag: "zebra", Desc: "striped"}}},
		{Name: "Animals", Tags: []models.TagEntry{{Tag: "cat"}, {Tag: "dog", Desc: "loyal"}}},
	})
	require.NoError(t, SaveCatalog(s, catalog))

	restored, ok, err := LoadCatalog(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.FormatJSON, restored.Format())
	assert.Equal(t, []string{"Zoo", "Animals"}, restored.CategoryNames())
	assert.Equal(t, catalog.Flat(), restored.Flat())
}

func TestLoadCatalogMissingAndCorrupt(t *testing.T) {
	s := NewMemoryStore()

	catalog, ok, err := LoadCatalog(s)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, catalog)

	require.NoError(t, s.Set(KeyCatalog, `{"format":"yaml","data":{}}`))
	_, ok, err = LoadCatalog(s)
	assert.Error(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyCatalog, `not json`))
	_, _, err = LoadCatalog(s)
	assert.Error(t, err)
}

func TestPromptsRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	prompts, err := LoadPrompts(s)
	require.NoError(t, err)
	assert.Empty(t, prompts)

	require.NoError(t, SavePrompts(s, models.SavedPrompts{"portrait": "1girl, smile", "scene": "forest"}))

	prompts, err = LoadPrompts(s)
	require.NoError(t, err)
	assert.Equal(t, "1girl, smile", prompts["portrait"])
	assert.Equal(t, []string{"portrait", "scene"}, prompts.Names())

	require.NoError(t, s.Set(KeySavedPrompts, "["))
	prompts, err = LoadPrompts(s)
	assert.Error(t, err)
	assert.NotNil(t, prompts)
	assert.Empty(t, prompts)
}

func TestPreferences(t *testing.T) {
	s := NewMemoryStore()

	prefs, err := LoadPreferences(s)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)

	require.NoError(t, SaveShowDescriptions(s, false))
	require.NoError(t, SaveTheme(s, "dark"))
	require.NoError(t, SaveAccent(s, "#112233"))

	prefs, err = LoadPreferences(s)
	require.NoError(t, err)
	assert.False(t, prefs.ShowDescriptions)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, "#112233", prefs.Accent)

	require.NoError(t, SaveAccent(s, ""))
	_, ok, _ := s.Get(KeyAccentColor)
	assert.False(t, ok)
}

func TestPreferencesIgnoreBadValues(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyShowDescriptions, "maybe"))
	require.NoError(t, s.Set(KeyAccentColor, "purple"))
	require.NoError(t, s.Set(KeyTheme, ""))

	prefs, err := LoadPreferences(s)
	require.NoError(t, err)
	assert.True(t, prefs.ShowDescriptions)
	assert.Equal(t, models.DefaultTheme, prefs.Theme)
	assert.Empty(t, prefs.Accent)
}
