package picker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/store"
)

// Origin says where an imported catalog came from
type Origin int

const (
	OriginBundled Origin = iota
	OriginFile
)

// ImportResult is a parsed catalog waiting to be applied
type ImportResult struct {
	Catalog *models.Catalog
	Origin  Origin
	Label   string // source name or file name
}

// ErrNoFetcher is returned by LoadBundled when no fetcher was configured
var ErrNoFetcher = errors.New("no catalog fetcher configured")

// ReadImport parses a user file. It does not touch any state, so it can run
// off the event loop.
func ReadImport(path string) (ImportResult, error) {
	catalog, err := importer.ImportPath(path)
	if err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Catalog: catalog, Origin: OriginFile, Label: filepath.Base(path)}, nil
}

// FetchBundled loads a bundled source without touching any state
func (c *Controller) FetchBundled(ctx context.Context, src importer.Source) (ImportResult, error) {
	if c.fetcher == nil {
		return ImportResult{}, ErrNoFetcher
	}
	catalog, err := c.fetcher.Fetch(ctx, src)
	if err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Catalog: catalog, Origin: OriginBundled, Label: src.Name}, nil
}

// ImportFile reads, parses and applies a user file
func (c *Controller) ImportFile(path string) error {
	result, err := ReadImport(path)
	if err != nil {
		return c.ReportImportError(err)
	}
	return c.ApplyImport(result)
}

// LoadBundled fetches and applies a bundled source
func (c *Controller) LoadBundled(ctx context.Context, src importer.Source) error {
	result, err := c.FetchBundled(ctx, src)
	if err != nil {
		return c.ReportImportError(err)
	}
	return c.ApplyImport(result)
}

// ApplyImport replaces the catalog wholesale and persists it. Tags from a
// user txt or csv file carry no descriptions, so the description preference
// is switched off as well.
func (c *Controller) ApplyImport(result ImportResult) error {
	if result.Catalog == nil {
		return c.ReportImportError(models.NewFormatError(result.Label, errors.New("no catalog")))
	}

	c.replaceCatalog(result.Catalog)
	c.logger.Info("catalog imported",
		zap.String("source", result.Label),
		zap.String("format", string(result.Catalog.Format())),
		zap.Int("categories", len(result.Catalog.CategoryNames())),
		zap.Int("tags", result.Catalog.Len()))

	if err := store.SaveCatalog(c.store, result.Catalog); err != nil {
		c.logger.Error("failed to persist catalog", zap.Error(err))
		return c.fail(fmt.Errorf("tags loaded but not saved: %w", err))
	}

	if result.Origin == OriginFile && !result.Catalog.DescriptionsAvailable() {
		c.state.Prefs.ShowDescriptions = false
		if err := store.SaveShowDescriptions(c.store, false); err != nil {
			c.logger.Warn("failed to persist description preference", zap.Error(err))
		}
	}

	c.success(importMessage(result))
	return nil
}

// ReportImportError surfaces a failed import. The current catalog is untouched.
func (c *Controller) ReportImportError(err error) error {
	c.logger.Warn("import failed", zap.Error(err))

	var formatErr *models.FormatError
	if errors.As(err, &formatErr) {
		c.notifier.Notify(Notice{Kind: NoticeError, Message: "Error loading tags: " + formatErr.Err.Error()})
		return err
	}
	return c.fail(err)
}

func importMessage(result ImportResult) string {
	if result.Origin == OriginBundled {
		return result.Label + " loaded"
	}
	return strings.ToUpper(string(result.Catalog.Format())) + " tags loaded"
}
