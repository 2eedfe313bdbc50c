package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagpick/pkg/models"
)

func useTempProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".tagpick")
	original := TagpickDir
	TagpickDir = dir
	t.Cleanup(func() { TagpickDir = original })
	return dir
}

func TestInitProjectStructure(t *testing.T) {
	dir := useTempProject(t)
	assert.False(t, ProjectExists())

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	for _, path := range []string{dir, filepath.Join(dir, ExportsDir), SettingsPath()} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected %s to exist", path)
		}
	}
	assert.True(t, ProjectExists())

	// Existing settings survive a second init
	custom := models.DefaultSettings()
	custom.UI.RandomCount = 9
	require.NoError(t, WriteSettings(custom))
	require.NoError(t, InitProjectStructure())

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 9, settings.UI.RandomCount)
}

func TestProjectPath(t *testing.T) {
	dir := useTempProject(t)
	assert.Equal(t, filepath.Join(dir, "store.db"), ProjectPath("store.db"))

	abs := filepath.Join(t.TempDir(), "elsewhere.db")
	assert.Equal(t, abs, ProjectPath(abs))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "prompt.txt")
	require.NoError(t, WriteFile(path, "cat, dog"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cat, dog", string(data))
}

func TestReadSettings(t *testing.T) {
	useTempProject(t)

	// Missing file yields defaults
	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	require.NoError(t, os.MkdirAll(TagpickDir, 0755))

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s *models.Settings)
		wantErr bool
	}{
		{
			name:    "partial file keeps defaults",
			content: "store:\n  backend: sqlite\nui:\n  backspace_window: 500ms\n",
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "sqlite", s.Store.Backend)
				assert.Equal(t, 500*time.Millisecond, s.UI.BackspaceWindow)
				assert.Equal(t, 5, s.UI.RandomCount)
			},
		},
		{
			name:    "invalid backend",
			content: "store:\n  backend: redis\n",
			wantErr: true,
		},
		{
			name:    "invalid url",
			content: "sources:\n  default_json_url: not a url\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "store: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(SettingsPath(), []byte(tt.content), 0644))

			settings, err := ReadSettings()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestWriteSettingsRejectsInvalid(t *testing.T) {
	useTempProject(t)

	settings := models.DefaultSettings()
	settings.UI.RandomCount = 0
	assert.Error(t, WriteSettings(settings))

	_, err := os.Stat(SettingsPath())
	assert.True(t, os.IsNotExist(err))
}

func TestSettingKeys(t *testing.T) {
	keys, err := SettingKeys(models.DefaultSettings())
	require.NoError(t, err)

	assert.Contains(t, keys, "store.backend")
	assert.Contains(t, keys, "ui.random_count")
	assert.Contains(t, keys, "sources.fetch_timeout")
	assert.Contains(t, keys, "log.debug")
	assert.IsIncreasing(t, keys)
}

func TestGetAndSetSetting(t *testing.T) {
	settings := models.DefaultSettings()

	value, err := GetSetting(settings, "ui.random_count")
	require.NoError(t, err)
	assert.Equal(t, "5", value)

	updated, err := SetSetting(settings, "ui.random_count", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, updated.UI.RandomCount)
	assert.Equal(t, 5, settings.UI.RandomCount, "original is untouched")

	updated, err = SetSetting(updated, "ui.backspace_window", "450ms")
	require.NoError(t, err)
	assert.Equal(t, 450*time.Millisecond, updated.UI.BackspaceWindow)
	assert.Equal(t, 8, updated.UI.RandomCount)

	updated, err = SetSetting(updated, "sources.csv_category", "Popular")
	require.NoError(t, err)
	assert.Equal(t, "Popular", updated.Sources.CSVCategory)

	updated, err = SetSetting(updated, "log.debug", "true")
	require.NoError(t, err)
	assert.True(t, updated.Log.Debug)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "ui.colour", value: "1"},
		{name: "section", key: "ui", value: "1"},
		{name: "wrong type", key: "ui.random_count", value: "many"},
		{name: "fails validation", key: "ui.random_count", value: "500"},
		{name: "bad backend", key: "store.backend", value: "redis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SetSetting(settings, tt.key, tt.value)
			assert.Error(t, err)
		})
	}

	_, err = GetSetting(settings, "missing.key")
	assert.Error(t, err)
}
