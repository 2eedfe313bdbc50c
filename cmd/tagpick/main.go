package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/cmd/commands"
	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/files"
	"github.com/pluqqy/tagpick/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagpick",
		Short: "Terminal tag picker for image generation prompts",
		Long: `tagpick lets you search tag catalogs, pick tags into a prompt and keep saved prompts.
Catalogs can be imported from JSON, TXT or CSV files. Run without a subcommand to start the TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       requireProject,
		RunE:          runTUI,
	}

	rootCmd.AddCommand(newInitCommand(), newVersionCommand())
	commands.RegisterGlobalFlags(rootCmd)
	commands.AddCommands(rootCmd)
	return rootCmd
}

func requireProject(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}

func runTUI(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")

	ctx := cli.NewCommandContext()
	ctx.Debug = debug
	ctx.Ephemeral = ephemeral
	ctx.LogToFile = true
	defer ctx.Close()

	settings := ctx.LoadSettingsWithDefault()
	defaultSource, err := ctx.BundledSource("json")
	if err != nil {
		return err
	}
	danbooruSource, err := ctx.BundledSource("csv")
	if err != nil {
		return err
	}

	notices := tui.NewNoticeBuffer()
	ctrl, err := ctx.NewController(notices, tui.ThemeNames())
	if err != nil {
		return err
	}

	log := ctx.Logger()
	log.Info("starting tui", zap.String("version", version), zap.String("store", settings.Store.Backend))

	app := tui.NewApp(ctrl, notices, tui.Options{
		DefaultSource:   defaultSource,
		DanbooruSource:  danbooruSource,
		RenderBatchSize: settings.UI.RenderBatchSize,
		SuggestionRows:  settings.UI.SuggestionRows,
		AutoLoad:        true,
		Logger:          log.Named("tui"),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new tagpick project",
		Long:  `Creates the .tagpick folder with default settings in the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing tagpick project in %s...\n", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			fmt.Fprintf(out, "✓ Created %s folder structure\n", files.TagpickDir)
			fmt.Fprintln(out, "\nRun 'tagpick' to start the interactive TUI.")
			if tip := tui.GetTerminalSetupMessage(tui.GetOS()); tip != "" {
				fmt.Fprintln(out, tip)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tagpick",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tagpick version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
