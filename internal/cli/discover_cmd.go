package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
)

func newDiscoverCmd(app *App) *cobra.Command {
	var req discovery.Request
	var categories []domain.Category

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run discovery for a city without storing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Categories = categories
			stop := formatter.StartSpinner(app.Progress, "Searching "+req.Location()+"...")
			res, err := app.Discoverer.Run(cmd.Context(), req)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("Candidates · %s", req.Location())))
			fmt.Fprint(out, formatter.FormatCandidates(res.Candidates))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatSourceReports(res.Reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.City, "city", "", "City to search (required)")
	cmd.Flags().StringVar(&req.State, "state", "", "State or region code")
	cmd.Flags().Var(newCategoriesValue(&categories), "category", "Limit to categories (repeatable, comma separated)")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
