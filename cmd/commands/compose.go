package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/composer"
	"github.com/pluqqy/tagpick/pkg/files"
	"github.com/pluqqy/tagpick/pkg/utils"
)

// ComposeResult is the output of the compose command
type ComposeResult struct {
	Prompt     string   `json:"prompt" yaml:"prompt"`
	Tags       []string `json:"tags" yaml:"tags"`
	Characters int      `json:"characters" yaml:"characters"`
	Tokens     int      `json:"tokens" yaml:"tokens"`
	SavedAs    string   `json:"saved_as,omitempty" yaml:"saved_as,omitempty"`
	File       string   `json:"file,omitempty" yaml:"file,omitempty"`
}

var (
	composeFrom   string
	composeRandom bool
	composeSave   string
	composeCopy   bool
	composeFile   string
)

// NewComposeCommand creates the compose command
func NewComposeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose [tags...]",
		Short: "Build a comma-separated prompt from tags",
		Long: `Build a prompt by appending tags in order. Repeated tags are added once.

The prompt can start from a saved prompt, be topped up with random tags
from the loaded catalog, saved under a name, copied to the clipboard or
written to a file.

Examples:
  # Compose from explicit tags
  tagpick compose "soft lighting" portrait bokeh

  # Add random tags and copy the result
  tagpick compose --random --copy

  # Extend a saved prompt and save it under a new name
  tagpick compose --from portrait "film grain" --save portrait-grain

  # Write to .tagpick/exports/
  tagpick compose cat dog --file animals.txt`,
		PreRunE: requireProject,
		RunE:    runCompose,
	}

	cmd.Flags().StringVar(&composeFrom, "from", "", "Start from a saved prompt")
	cmd.Flags().BoolVarP(&composeRandom, "random", "r", false, "Append random tags from the catalog")
	cmd.Flags().StringVarP(&composeSave, "save", "s", "", "Save the prompt under this name")
	cmd.Flags().BoolVar(&composeCopy, "copy", false, "Copy the prompt to the clipboard")
	cmd.Flags().StringVarP(&composeFile, "file", "f", "", "Write the prompt to a file (relative paths go to the exports directory)")

	return cmd
}

func runCompose(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && composeFrom == "" && !composeRandom {
		return fmt.Errorf("nothing to compose: pass tags, --from or --random")
	}
	if composeSave != "" {
		if err := cli.ValidatePromptName(composeSave); err != nil {
			return err
		}
	}

	// Per-tag notices would drown the prompt itself
	ctx, ctrl, err := openControllerWith(cmd, nil)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if composeFrom != "" {
		if err := ctrl.LoadPrompt(composeFrom); err != nil {
			return fmt.Errorf("failed to load prompt %q: %w", composeFrom, err)
		}
	}

	for _, tag := range args {
		if err := ctrl.AddTag(tag); err != nil {
			return err
		}
	}

	if composeRandom {
		if _, err := ctrl.AddRandomTags(); err != nil {
			return err
		}
	}

	prompt := ctrl.Prompt()
	if prompt.IsEmpty() {
		return fmt.Errorf("prompt is empty")
	}

	result := ComposeResult{Prompt: prompt.Text(), Tags: prompt.Tags()}
	counters := ctrl.Counters()
	result.Characters = counters.Characters
	result.Tokens = counters.Tokens

	if composeSave != "" {
		if err := ctrl.SavePrompt(composeSave); err != nil {
			return err
		}
		result.SavedAs = composeSave
		cli.PrintSuccess("%q saved", composeSave)
	}

	if composeCopy {
		if err := ctrl.CopyPrompt(); err != nil {
			return err
		}
		cli.PrintSuccess("Copied to clipboard")
	}

	if composeFile != "" {
		path := composeFile
		if !filepath.IsAbs(path) {
			path = files.ProjectPath(filepath.Join(files.ExportsDir, path))
		}
		if err := files.WriteFile(path, result.Prompt+"\n"); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		result.File = path
		cli.PrintSuccess("Written to %s", path)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Prompt)
	printCounters(cmd, counters)
	return nil
}

func printCounters(cmd *cobra.Command, counters composer.Counters) {
	if cli.IsQuiet() {
		return
	}
	percentage, _, status := utils.GetTokenLimitStatus(counters.Tokens)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d tags, %d characters, %s (%d%% of chunk, %s)\n",
		counters.Tags, counters.Characters, utils.FormatTokenCount(counters.Tokens), percentage, status)
}
