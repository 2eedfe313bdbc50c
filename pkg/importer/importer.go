// Package importer turns catalog files in the supported formats into models.Catalog values.
//
// Three formats are understood:
//   - json: an object mapping category names to [{"tag": ..., "desc": ...}]
//   - txt:  one tag per line, collected under a single "Custom Tags" category
//   - csv:  "tag,popularity" per line, ordered by popularity (highest first)
//
// Every import is all-or-nothing: either a complete Catalog is returned or a
// *models.FormatError, and callers keep whatever catalog they had before.
package importer

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pluqqy/tagpick/pkg/models"
)

// ErrUnsupportedFormat is returned for file extensions other than json, txt and csv
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DetectFormat infers the import format from a file name's extension
func DetectFormat(filename string) (models.Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	format := models.Format(ext)
	if !format.Valid() {
		return "", models.NewFormatError(filename, ErrUnsupportedFormat)
	}
	return format, nil
}

// ImportFile parses a user supplied file, choosing the format from its extension.
// Line-list and CSV files are grouped under "Custom Tags".
func ImportFile(filename string, data []byte) (*models.Catalog, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	catalog, err := Parse(format, data, models.CustomTagsCategory)
	if err != nil {
		var formatErr *models.FormatError
		if errors.As(err, &formatErr) && formatErr.Source == "" {
			formatErr.Source = filename
		}
		return nil, err
	}
	return catalog, nil
}

// Parse parses data in the given format. category names the single synthetic
// category used by the csv format; txt always uses "Custom Tags".
func Parse(format models.Format, data []byte, category string) (*models.Catalog, error) {
	switch format {
	case models.FormatJSON:
		return ParseJSON(data)
	case models.FormatTXT:
		return ParseLines(data), nil
	case models.FormatCSV:
		return ParseCSV(data, category), nil
	default:
		return nil, models.NewFormatError("", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format))
	}
}

// ParseJSON parses a categorized catalog with descriptions
func ParseJSON(data []byte) (*models.Catalog, error) {
	categories, err := models.DecodeCategories(data)
	if err != nil {
		return nil, models.NewFormatError("", err)
	}
	return models.NewCatalog(models.FormatJSON, categories), nil
}

// ParseLines parses a newline-delimited list of tags
func ParseLines(data []byte) *models.Catalog {
	var tags []models.TagEntry
	for _, line := range nonBlankLines(data) {
		tags = append(tags, models.TagEntry{Tag: strings.TrimSpace(line)})
	}

	return models.NewCatalog(models.FormatTXT, []models.Category{
		{Name: models.CustomTagsCategory, Tags: tags},
	})
}

type rankedTag struct {
	tag        string
	popularity int
}

// ParseCSV parses "tag,popularity" lines. Rows are ordered by popularity,
// highest first, with ties kept in file order. An unreadable popularity ranks
// the row as 0 rather than rejecting it.
func ParseCSV(data []byte, category string) *models.Catalog {
	var rows []rankedTag
	for _, line := range nonBlankLines(data) {
		tag, popularity, _ := strings.Cut(line, ",")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		rows = append(rows, rankedTag{
			tag:        tag,
			popularity: parseLeadingInt(strings.TrimSpace(popularity)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].popularity > rows[j].popularity
	})

	tags := make([]models.TagEntry, len(rows))
	for i, row := range rows {
		tags[i] = models.TagEntry{Tag: row.tag}
	}

	return models.NewCatalog(models.FormatCSV, []models.Category{
		{Name: category, Tags: tags},
	})
}

// nonBlankLines splits on '\n' and drops lines that are empty or whitespace only
func nonBlankLines(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseLeadingInt reads an optionally signed run of leading digits, so "12abc"
// is 12 and "" or "abc" is 0. Values beyond int range saturate.
func parseLeadingInt(s string) int {
	sign := 1
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digits++
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0
	}
	return sign * n
}
