package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagpick/pkg/models"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fileStore, err := NewFileStore(filepath.Join(dir, "store.yaml"))
	require.NoError(t, err)

	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("theme", "sekiratte"))
			value, ok, err := s.Get("theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "sekiratte", value)

			require.NoError(t, s.Set("theme", "dark"))
			value, _, _ = s.Get("theme")
			assert.Equal(t, "dark", value)

			require.NoError(t, s.Remove("theme"))
			_, ok, err = s.Get("theme")
			require.NoError(t, err)
			assert.False(t, ok)

			// Removing an absent key is not an error
			assert.NoError(t, s.Remove("theme"))
		})
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.yaml")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyTheme, "light"))
	require.NoError(t, s.Set(KeyAccentColor, "#aabbcc"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok, err := reopened.Get(KeyAccentColor)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#aabbcc", value)
	assert.Equal(t, path, reopened.Path())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeySavedPrompts, `{"a":"b"}`))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(KeySavedPrompts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":"b"}`, value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		settings models.StoreSettings
		check    func(t *testing.T, s Store)
		wantErr  bool
	}{
		{
			name:     "default file backend",
			settings: models.StoreSettings{Backend: "file"},
			check: func(t *testing.T, s Store) {
				fs, ok := s.(*FileStore)
				require.True(t, ok)
				assert.Equal(t, filepath.Join(dir, DefaultFileStoreName), fs.Path())
			},
		},
		{
			name:     "sqlite backend",
			settings: models.StoreSettings{Backend: "sqlite", Path: "custom.db"},
			check: func(t *testing.T, s Store) {
				_, ok := s.(*SQLiteStore)
				assert.True(t, ok)
			},
		},
		{
			name:     "memory backend",
			settings: models.StoreSettings{Backend: "memory"},
			check: func(t *testing.T, s Store) {
				_, ok := s.(*MemoryStore)
				assert.True(t, ok)
			},
		},
		{
			name:     "unknown backend",
			settings: models.StoreSettings{Backend: "redis"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.settings, dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			tt.check(t, s)
		})
	}
}
