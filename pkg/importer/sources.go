package importer

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/models"
)

//go:embed data/default.json data/default.csv
var bundled embed.FS

// maxSourceBytes caps how much of a remote catalog is read
const maxSourceBytes = 64 << 20

// Source describes a bundled catalog
type Source struct {
	Name     string        // shown to the user, e.g. "Default tags"
	Format   models.Format // json or csv
	URL      string        // optional remote location; empty uses the embedded copy
	Category string        // category for csv sources
	embedded string
}

// DefaultJSONSource is the bundled categorized catalog with descriptions
func DefaultJSONSource(url string) Source {
	return Source{
		Name:     "Default tags",
		Format:   models.FormatJSON,
		URL:      url,
		embedded: "data/default.json",
	}
}

// DefaultCSVSource is the bundled popularity-ranked catalog
func DefaultCSVSource(url, category string) Source {
	if category == "" {
		category = models.DanbooruTagsCategory
	}
	return Source{
		Name:     "Danbooru tags",
		Format:   models.FormatCSV,
		URL:      url,
		Category: category,
		embedded: "data/default.csv",
	}
}

// Fetcher loads bundled sources, either over HTTP or from the binary
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a fetcher. A zero timeout means no timeout.
func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch reads and parses a source. Any failure is reported as a FormatError.
func (f *Fetcher) Fetch(ctx context.Context, src Source) (*models.Catalog, error) {
	data, err := f.read(ctx, src)
	if err != nil {
		return nil, models.NewFormatError(src.Name, err)
	}

	catalog, err := Parse(src.Format, data, src.Category)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("fetched catalog",
		zap.String("source", src.Name),
		zap.String("format", string(src.Format)),
		zap.Int("tags", catalog.Len()))
	return catalog, nil
}

func (f *Fetcher) read(ctx context.Context, src Source) ([]byte, error) {
	if src.URL == "" {
		if src.embedded == "" {
			return nil, fmt.Errorf("source %q has no location", src.Name)
		}
		return bundled.ReadFile(src.embedded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", src.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.URL, err)
	}
	return data, nil
}
