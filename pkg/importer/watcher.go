package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/models"
)

// DefaultWatchDebounce absorbs the burst of events editors emit for one save
const DefaultWatchDebounce = 250 * time.Millisecond

// ImportPath reads a catalog file from disk and imports it by extension
func ImportPath(path string) (*models.Catalog, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewFormatError(filepath.Base(path), fmt.Errorf("failed to read file: %w", err))
	}
	return ImportFile(filepath.Base(path), data)
}

// Watcher re-imports a catalog file whenever it changes on disk
type Watcher struct {
	path     string
	debounce time.Duration
	onImport func(*models.Catalog)
	onError  func(error)
	logger   *zap.Logger
}

// NewWatcher creates a watcher for path. onImport receives every successfully
// imported catalog; onError receives read and format failures. Both are called
// from the goroutine running Run, one at a time.
func NewWatcher(path string, onImport func(*models.Catalog), onError func(error), logger *zap.Logger) (*Watcher, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if onError == nil {
		onError = func(error) {}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return &Watcher{
		path:     abs,
		debounce: DefaultWatchDebounce,
		onImport: onImport,
		onError:  onError,
		logger:   logger,
	}, nil
}

// SetDebounce changes the quiet period that must pass before a re-import
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run imports the file once and then again after every change, until ctx is done.
// The parent directory is watched so that editors replacing the file on save
// are picked up as well.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("watching catalog", zap.String("path", w.path))

	w.reload()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("catalog changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))
			w.onError(err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	catalog, err := ImportPath(w.path)
	if err != nil {
		w.logger.Warn("re-import failed", zap.String("path", w.path), zap.Error(err))
		w.onError(err)
		return
	}

	w.logger.Info("catalog re-imported", zap.String("path", w.path), zap.Int("tags", catalog.Len()))
	w.onImport(catalog)
}
