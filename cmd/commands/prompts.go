package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/composer"
	"github.com/pluqqy/tagpick/pkg/files"
)

// PromptItem represents a saved prompt in command output
type PromptItem struct {
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Tags   int    `json:"tags" yaml:"tags"`
	Tokens int    `json:"tokens" yaml:"tokens"`
}

// NewPromptsCommand creates the prompts command and its subcommands
func NewPromptsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"prompt", "p"},
		Short:   "Manage saved prompts",
		Long: `List, show, save, edit, copy, export and delete named prompts.

Examples:
  tagpick prompts list
  tagpick prompts save portrait "soft lighting, portrait, bokeh"
  tagpick prompts edit portrait
  tagpick prompts copy portrait
  tagpick prompts export portrait portrait.txt
  tagpick prompts delete portrait`,
		PreRunE: requireProject,
	}

	cmd.AddCommand(
		newPromptsListCommand(),
		newPromptsShowCommand(),
		newPromptsSaveCommand(),
		newPromptsEditCommand(),
		newPromptsCopyCommand(),
		newPromptsExportCommand(),
		newPromptsDeleteCommand(),
	)

	return cmd
}

func promptItem(name, text string) PromptItem {
	counters := composer.ParsePrompt(text).Counters()
	return PromptItem{Name: name, Prompt: text, Tags: counters.Tags, Tokens: counters.Tokens}
}

func newPromptsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved prompts",
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, ctrl, err := openControllerWith(cmd, nil)
			if err != nil {
				return err
			}
			defer ctx.Close()

			items := make([]PromptItem, 0)
			for _, name := range ctrl.SavedPromptNames() {
				text, _ := ctrl.SavedPrompt(name)
				items = append(items, promptItem(name, text))
			}

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, items)
			}

			if len(items) == 0 {
				cli.PrintInfo("No saved prompts")
				return nil
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("NAME", "TAGS", "TOKENS", "PROMPT")
			for _, item := range items {
				table.Row(item.Name, fmt.Sprint(item.Tags), fmt.Sprint(item.Tokens), cli.TruncateString(item.Prompt, 50))
			}
			table.Flush()
			return nil
		},
	}
}

func newPromptsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show <name>",
		Short:   "Print a saved prompt",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, ctrl, err := openControllerWith(cmd, nil)
			if err != nil {
				return err
			}
			defer ctx.Close()

			text, ok := ctrl.SavedPrompt(args[0])
			if !ok {
				return fmt.Errorf("prompt %q not found", args[0])
			}

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, promptItem(args[0], text))
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newPromptsSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <prompt>",
		Short: "Save a prompt under a name",
		Long: `Save a comma-separated prompt under a name, replacing any prompt
already saved with that name. Blank and repeated tags are dropped.`,
		Args:    cobra.MinimumNArgs(2),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := cli.ValidatePromptName(name); err != nil {
				return err
			}

			ctx, ctrl, err := openControllerWith(cmd, nil)
			if err != nil {
				return err
			}
			defer ctx.Close()

			if _, exists := ctrl.SavedPrompt(name); exists {
				ok, err := cli.Confirm(fmt.Sprintf("Prompt %q exists. Overwrite?", name), false)
				if err != nil {
					return err
				}
				if !ok {
					cli.PrintInfo("Save cancelled")
					return nil
				}
			}

			for _, arg := range args[1:] {
				for _, tag := range strings.Split(arg, ",") {
					if strings.TrimSpace(tag) == "" {
						continue
					}
					if err := ctrl.AddTag(tag); err != nil {
						return err
					}
				}
			}

			if err := ctrl.SavePrompt(name); err != nil {
				return err
			}
			cli.PrintSuccess("%q saved", name)
			return nil
		},
	}
}

func newPromptsEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <name>",
		Short:   "Edit a saved prompt in $EDITOR",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ctx, ctrl, err := openController(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			text, ok := ctrl.SavedPrompt(name)
			if !ok {
				return fmt.Errorf("prompt %q not found", name)
			}

			edited, err := cli.NewEditorLauncher().EditText("tagpick-prompt-*.txt", text)
			if err != nil {
				return err
			}
			if edited == text {
				cli.PrintInfo("No changes")
				return nil
			}

			ctrl.SetPromptText(edited)
			return ctrl.SavePrompt(name)
		},
	}
}

func newPromptsCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "copy <name>",
		Aliases: []string{"clip"},
		Short:   "Copy a saved prompt to the clipboard",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, ctrl, err := openController(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			return ctrl.CopySavedPrompt(args[0])
		},
	}
}

func newPromptsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> [file]",
		Short: "Write a saved prompt to a file",
		Long: `Write a saved prompt to a file. Relative paths are placed in the
exports directory; the default file name is <name>.txt.`,
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ctx, ctrl, err := openControllerWith(cmd, nil)
			if err != nil {
				return err
			}
			defer ctx.Close()

			text, ok := ctrl.SavedPrompt(name)
			if !ok {
				return fmt.Errorf("prompt %q not found", name)
			}

			path := name + ".txt"
			if len(args) > 1 {
				path = args[1]
			}
			if !filepath.IsAbs(path) {
				path = files.ProjectPath(filepath.Join(files.ExportsDir, path))
			}

			if err := files.WriteFile(path, text+"\n"); err != nil {
				return fmt.Errorf("failed to export prompt: %w", err)
			}
			cli.PrintSuccess("Exported %q to %s", name, path)
			return nil
		},
	}
}

func newPromptsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved prompt",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ctx, ctrl, err := openController(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			if _, ok := ctrl.SavedPrompt(name); !ok {
				return fmt.Errorf("prompt %q not found", name)
			}

			ok, err := cli.Confirm(fmt.Sprintf("Delete prompt %q?", name), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Deletion cancelled")
				return nil
			}

			return ctrl.DeletePrompt(name)
		},
	}
}
