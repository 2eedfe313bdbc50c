package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/search"
)

// SearchResult represents a single search result
type SearchResult struct {
	Tag      string `json:"tag" yaml:"tag"`
	Category string `json:"category" yaml:"category"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

var (
	searchLimit    int
	searchCategory string
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the loaded catalog for matching tags",
		Long: `Search tags by case-insensitive substring over the tag name and its
description. Results keep catalog order.

Query syntax:
  cat:<name>     restrict to one category (also category:<name>)
  cat:"a name"   quote category names that contain spaces
  cat:<name>     with no text lists the whole category

Examples:
  # Tags mentioning "light"
  tagpick search light

  # Only in the Lighting category
  tagpick search 'cat:Lighting soft'

  # First 5 results as JSON
  tagpick search hair --limit 5 -o json`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: requireProject,
		RunE:    runSearch,
	}

	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (0 for all)")
	cmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Restrict results to one category")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	catalog := ctrl.Catalog()
	if catalog.IsEmpty() {
		return models.ErrCatalogEmpty
	}

	api := search.NewSearchAPI(catalog)
	matches := api.Search(search.SearchOptions{
		Query:      strings.Join(args, " "),
		Category:   searchCategory,
		MaxResults: searchLimit,
	})

	showDesc := ctrl.DescriptionsVisible()
	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		result := SearchResult{Tag: match.Entry.Tag, Category: match.Category}
		if showDesc {
			result.Desc = match.Entry.Desc
		}
		results = append(results, result)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, results)
	}

	if len(results) == 0 {
		cli.PrintInfo("No tags match %q", strings.Join(args, " "))
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if showDesc {
		table.Header("TAG", "CATEGORY", "DESCRIPTION")
	} else {
		table.Header("TAG", "CATEGORY")
	}
	for _, result := range results {
		if showDesc {
			table.Row(result.Tag, result.Category, cli.TruncateString(result.Desc, 60))
		} else {
			table.Row(result.Tag, result.Category)
		}
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d tags\n", len(results))
	return nil
}
