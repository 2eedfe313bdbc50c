package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/files"
	"github.com/pluqqy/tagpick/pkg/picker"
	"github.com/pluqqy/tagpick/pkg/tui"
)

// contextHook lets tests adjust every command context before use
var contextHook func(*cli.CommandContext)

// RegisterGlobalFlags adds the flags every tagpick command understands
func RegisterGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.BoolP("quiet", "q", false, "Suppress status messages")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("yes", "y", false, "Skip confirmation prompts")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("ephemeral", false, "Use an in-memory store that is discarded on exit")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet := boolFlag(cmd, "quiet")
		noColor := boolFlag(cmd, "no-color") || os.Getenv("NO_COLOR") != ""
		cli.SetGlobalFlags(quiet, noColor, boolFlag(cmd, "yes"))
		return cli.ValidateOutputFormat(outputFormat(cmd))
	}
}

// AddCommands registers the tagpick subcommands on root
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		NewImportCommand(),
		NewDefaultsCommand(),
		NewWatchCommand(),
		NewSearchCommand(),
		NewCategoriesCommand(),
		NewComposeCommand(),
		NewPromptsCommand(),
		NewPrefsCommand(),
		NewSettingsCommand(),
	)
}

// requireProject is the PreRunE shared by commands that need a project
func requireProject(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(files.TagpickDir); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'tagpick init' first", files.TagpickDir)
	}
	return nil
}

// newCommandContext builds a command context from the global flags
func newCommandContext(cmd *cobra.Command) *cli.CommandContext {
	ctx := cli.NewCommandContext()
	ctx.Debug = boolFlag(cmd, "debug")
	ctx.Ephemeral = boolFlag(cmd, "ephemeral")
	if contextHook != nil {
		contextHook(ctx)
	}
	return ctx
}

// openController builds a context and a restored controller that prints its
// notices. The caller must Close the returned context.
func openController(cmd *cobra.Command) (*cli.CommandContext, *picker.Controller, error) {
	return openControllerWith(cmd, cli.NoticePrinter)
}

// openControllerWith is openController with a custom notifier; nil discards notices
func openControllerWith(cmd *cobra.Command, notifier picker.Notifier) (*cli.CommandContext, *picker.Controller, error) {
	ctx := newCommandContext(cmd)
	if err := ctx.ValidateProject(); err != nil {
		return nil, nil, err
	}

	ctrl, err := ctx.NewController(notifier, tui.ThemeNames())
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}
	return ctx, ctrl, nil
}

func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}

func boolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	return err == nil && value
}
