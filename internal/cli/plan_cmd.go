package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	var deep bool

	cmd := &cobra.Command{
		Use:   "plan <edition>",
		Short: "Assign a place and an alternate to every week of an edition",
		Long: `Runs the assignment strategies in order until one produces a draft,
falling back to keyword matching, then enforces the usage caps. Planning an
edition again replaces its previous plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveEditionID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner(app.Progress, "Planning 52 weeks...")
			res, err := app.Plans.Plan(cmd.Context(), service.PlanRequest{EditionID: id, Deep: deep})
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(res.Edition, res.Themes, res.Plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&deep, "deep", false, "Also try the slower reasoning models")
	return cmd
}
