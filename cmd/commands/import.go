package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
)

// ImportResult is the output of import and defaults
type ImportResult struct {
	Source     string `json:"source" yaml:"source"`
	Format     string `json:"format" yaml:"format"`
	Categories int    `json:"categories" yaml:"categories"`
	Tags       int    `json:"tags" yaml:"tags"`
}

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the tag catalog with a JSON, TXT or CSV file",
		Long: `Import a tag catalog from a file. The current catalog is replaced
wholesale and saved, so it is available the next time tagpick starts.

Formats (chosen by extension):
  .json  categories mapped to {tag, desc} entries
  .txt   one tag per line, loaded into "Custom Tags"
  .csv   tag,count rows, ranked by count, loaded into one category

Examples:
  # Import a categorized catalog
  tagpick import my-tags.json

  # Import a plain word list
  tagpick import words.txt`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := cli.ValidateImportFile(path); err != nil {
		return err
	}

	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := ctrl.ImportFile(path); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	return outputCatalogSummary(cmd, path, ctrl.Catalog())
}

// NewDefaultsCommand creates the defaults command
func NewDefaultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults <json|csv>",
		Short: "Load one of the bundled tag catalogs",
		Long: `Load a bundled tag catalog, replacing the current one.

Catalogs:
  json  the default categorized tags with descriptions
  csv   the Danbooru tag list ranked by popularity

When sources.default_json_url or sources.default_csv_url is set, the
catalog is fetched from that URL instead of the copy built into tagpick.

Examples:
  tagpick defaults json
  tagpick defaults csv -o json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"json", "csv"},
		PreRunE:   requireProject,
		RunE:      runDefaults,
	}

	return cmd
}

func runDefaults(cmd *cobra.Command, args []string) error {
	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	src, err := ctx.BundledSource(args[0])
	if err != nil {
		return err
	}

	if err := ctrl.LoadBundled(cmd.Context(), src); err != nil {
		return fmt.Errorf("failed to load %s: %w", src.Name, err)
	}

	return outputCatalogSummary(cmd, src.Name, ctrl.Catalog())
}
