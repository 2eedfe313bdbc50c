package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/tui"
)

// PrefsResult is the output of prefs show
type PrefsResult struct {
	ShowDescriptions      bool     `json:"show_descriptions" yaml:"show_descriptions"`
	DescriptionsAvailable bool     `json:"descriptions_available" yaml:"descriptions_available"`
	Theme                 string   `json:"theme" yaml:"theme"`
	Accent                string   `json:"accent,omitempty" yaml:"accent,omitempty"`
	Themes                []string `json:"themes" yaml:"themes"`
}

// NewPrefsCommand creates the prefs command
func NewPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prefs",
		Aliases: []string{"preferences"},
		Short:   "Show or change display preferences",
		Long: `Show or change the preferences the picker remembers between sessions:
description visibility, color theme and accent color.

Examples:
  tagpick prefs show
  tagpick prefs descriptions off
  tagpick prefs theme midnight
  tagpick prefs accent "#ff8800"
  tagpick prefs accent reset`,
		PreRunE: requireProject,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "show",
			Short:   "Show current preferences",
			Args:    cobra.NoArgs,
			PreRunE: requireProject,
			RunE:    runPrefsShow,
		},
		&cobra.Command{
			Use:       "descriptions <on|off>",
			Short:     "Show or hide tag descriptions",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			PreRunE:   requireProject,
			RunE:      runPrefsDescriptions,
		},
		&cobra.Command{
			Use:       "theme <name>",
			Short:     "Select the color theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: tui.ThemeNames(),
			PreRunE:   requireProject,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, ctrl, err := openController(cmd)
				if err != nil {
					return err
				}
				defer ctx.Close()

				if err := ctrl.SetTheme(args[0]); err != nil {
					return err
				}
				cli.PrintSuccess("Theme set to %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:     "accent <#rrggbb|reset>",
			Short:   "Override the theme's accent color",
			Args:    cobra.ExactArgs(1),
			PreRunE: requireProject,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, ctrl, err := openController(cmd)
				if err != nil {
					return err
				}
				defer ctx.Close()

				if args[0] == "reset" {
					if err := ctrl.ClearAccent(); err != nil {
						return err
					}
					cli.PrintSuccess("Accent reset to theme default")
					return nil
				}

				if err := ctrl.SetAccent(args[0]); err != nil {
					return err
				}
				cli.PrintSuccess("Accent set to %s", ctrl.Preferences().Accent)
				return nil
			},
		},
	)

	return cmd
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	ctx, ctrl, err := openControllerWith(cmd, nil)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs := ctrl.Preferences()
	result := PrefsResult{
		ShowDescriptions:      prefs.ShowDescriptions,
		DescriptionsAvailable: ctrl.Catalog().DescriptionsAvailable(),
		Theme:                 prefs.Theme,
		Accent:                prefs.Accent,
		Themes:                tui.ThemeNames(),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	accent := result.Accent
	if accent == "" {
		accent = "(theme default)"
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("PREFERENCE", "VALUE")
	table.Row("descriptions", strconv.FormatBool(result.ShowDescriptions))
	table.Row("theme", result.Theme)
	table.Row("accent", accent)
	table.Flush()
	return nil
}

func runPrefsDescriptions(cmd *cobra.Command, args []string) error {
	var show bool
	switch args[0] {
	case "on", "true", "yes":
		show = true
	case "off", "false", "no":
		show = false
	default:
		return fmt.Errorf("invalid value %q (must be: on or off)", args[0])
	}

	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := ctrl.SetShowDescriptions(show); err != nil {
		return err
	}
	cli.PrintSuccess("Descriptions %s", args[0])
	return nil
}
