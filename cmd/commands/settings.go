package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/files"
)

// SettingItem is one settings key and its value
type SettingItem struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Read and change settings.yaml",
		Long: `Read and change project settings using dotted keys.

Examples:
  tagpick settings list
  tagpick settings get store.backend
  tagpick settings set store.backend sqlite
  tagpick settings set ui.backspace_window 400ms`,
		PreRunE: requireProject,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Short:   "List every setting",
			Args:    cobra.NoArgs,
			PreRunE: requireProject,
			RunE:    runSettingsList,
		},
		&cobra.Command{
			Use:     "get <key>",
			Short:   "Print one setting",
			Args:    cobra.ExactArgs(1),
			PreRunE: requireProject,
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := files.ReadSettings()
				if err != nil {
					return err
				}
				value, err := files.GetSetting(settings, args[0])
				if err != nil {
					return err
				}

				format := outputFormat(cmd)
				if format != string(cli.FormatText) {
					return cli.OutputResults(cmd.OutOrStdout(), format, SettingItem{Key: args[0], Value: value})
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set <key> <value>",
			Short:   "Change one setting",
			Args:    cobra.ExactArgs(2),
			PreRunE: requireProject,
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := files.ReadSettings()
				if err != nil {
					return err
				}
				updated, err := files.SetSetting(settings, args[0], args[1])
				if err != nil {
					return err
				}
				if err := files.WriteSettings(updated); err != nil {
					return fmt.Errorf("failed to save settings: %w", err)
				}
				cli.PrintSuccess("%s set to %s", args[0], args[1])
				return nil
			},
		},
	)

	return cmd
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	keys, err := files.SettingKeys(settings)
	if err != nil {
		return err
	}

	items := make([]SettingItem, 0, len(keys))
	for _, key := range keys {
		value, err := files.GetSetting(settings, key)
		if err != nil {
			return err
		}
		items = append(items, SettingItem{Key: key, Value: value})
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, items)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("KEY", "VALUE")
	for _, item := range items {
		table.Row(item.Key, item.Value)
	}
	table.Flush()
	return nil
}
