package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
)

func newThemesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Browse the 52-week theme templates",
	}
	cmd.AddCommand(newThemesListCmd(app), newThemesShowCmd(app))
	return cmd
}

func newThemesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed theme templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresetList(app.Catalog.List()))
			return nil
		},
	}
}

func newThemesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <version>",
		Short: "Show every week of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := app.Catalog.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreset(preset))
			return nil
		},
	}
}
