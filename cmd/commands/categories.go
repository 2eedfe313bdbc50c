package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/models"
)

// CategoryInfo describes one category of the catalog
type CategoryInfo struct {
	Name  string `json:"name" yaml:"name"`
	Tags  int    `json:"tags" yaml:"tags"`
	Color string `json:"color" yaml:"color"`
}

// CategoriesResult is the output of the categories command
type CategoriesResult struct {
	Format     string         `json:"format" yaml:"format"`
	Categories []CategoryInfo `json:"categories" yaml:"categories"`
	Tags       int            `json:"tags" yaml:"tags"`
}

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List the categories of the loaded catalog",
		Long: `List every category of the loaded catalog in its original order,
with the number of tags it holds.

Examples:
  tagpick categories
  tagpick categories -o yaml`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runCategories,
	}

	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	catalog := ctrl.Catalog()
	if catalog.IsEmpty() {
		return models.ErrCatalogEmpty
	}

	result := CategoriesResult{Format: string(catalog.Format()), Tags: catalog.Len()}
	for _, category := range catalog.Categories() {
		result.Categories = append(result.Categories, CategoryInfo{
			Name:  category.Name,
			Tags:  len(category.Tags),
			Color: models.CategoryColor(category.Name),
		})
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	// Colored names carry escape codes the tabwriter would count, so the
	// name column is padded before coloring
	width := len("CATEGORY")
	for _, category := range result.Categories {
		width = max(width, len([]rune(category.Name)))
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header(cli.PadRight("CATEGORY", width) + "  TAGS")
	for _, category := range result.Categories {
		table.Row(cli.ColorizeCategory(cli.PadRight(category.Name, width)) + "  " + strconv.Itoa(category.Tags))
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d tags in %d categories (%s)\n", result.Tags, len(result.Categories), result.Format)
	return nil
}

// outputCatalogSummary reports the catalog left by an import
func outputCatalogSummary(cmd *cobra.Command, source string, catalog *models.Catalog) error {
	result := ImportResult{
		Source:     source,
		Format:     string(catalog.Format()),
		Categories: len(catalog.CategoryNames()),
		Tags:       catalog.Len(),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tags in %d categories\n", result.Source, result.Tags, result.Categories)
	return nil
}
