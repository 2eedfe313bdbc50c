package search

import "github.com/pluqqy/tagpick/pkg/models"

// SearchAPI provides a high-level interface for one-shot searches
type SearchAPI struct {
	engine *Engine
	parser *Parser
}

// NewSearchAPI creates a search API over catalog
func NewSearchAPI(catalog *models.Catalog) *SearchAPI {
	return &SearchAPI{
		engine: NewEngine(catalog),
		parser: NewParser(),
	}
}

// SearchOptions represents options for searching
type SearchOptions struct {
	Query      string
	Category   string // overrides a category: prefix in Query
	MaxResults int    // 0 means unlimited
}

// Search performs a search with the given options
func (api *SearchAPI) Search(opts SearchOptions) []Match {
	q := api.parser.Parse(opts.Query)
	if opts.Category != "" {
		q.Category = opts.Category
	}

	results := api.engine.Query(q)
	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

// Engine returns the underlying engine
func (api *SearchAPI) Engine() *Engine {
	return api.engine
}
