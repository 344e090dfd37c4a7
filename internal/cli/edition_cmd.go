package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
)

func newEditionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "editions",
		Aliases: []string{"edition"},
		Short:   "Manage stored editions",
	}
	cmd.AddCommand(
		newEditionsListCmd(app),
		newEditionsShowCmd(app),
		newEditionsDeleteCmd(app),
	)
	return cmd
}

func newEditionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List editions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editions, err := app.Editions.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEditionList(editions))
			return nil
		},
	}
}

func newEditionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <edition>",
		Short: "Show an edition's library and plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveEditionID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Editions.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEditionDetail(d))
			return nil
		},
	}
}

func newEditionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <edition>",
		Short: "Delete an edition with its places and plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveEditionID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Editions.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted edition %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
