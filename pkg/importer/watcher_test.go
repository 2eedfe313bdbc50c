package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pluqqy/tagpick/pkg/models"
)

func TestWatcherReimportsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "tags.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\n"), 0644))

	imported := make(chan *models.Catalog, 8)
	w, err := NewWatcher(path, func(c *models.Catalog) { imported <- c }, nil, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case c := <-imported:
		assert.Equal(t, []string{"cat"}, tagNames(c.Flat()))
	case <-time.After(2 * time.Second):
		t.Fatal("initial import did not happen")
	}

	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\n"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-imported:
			if c.Len() == 2 {
				assert.Equal(t, []string{"cat", "dog"}, tagNames(c.Flat()))
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-deadline:
			cancel()
			<-done
			t.Fatal("change was not re-imported")
		}
	}
}

func TestWatcherReportsFormatErrors(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "tags.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	errs := make(chan error, 1)
	w, err := NewWatcher(path, func(*models.Catalog) {}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-errs:
		var formatErr *models.FormatError
		assert.ErrorAs(t, err, &formatErr)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a format error")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestNewWatcherRejectsUnknownExtension(t *testing.T) {
	_, err := NewWatcher("tags.yaml", func(*models.Catalog) {}, nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
