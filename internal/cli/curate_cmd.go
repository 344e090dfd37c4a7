package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/importer"
	"github.com/alexanderramin/wildercal/internal/service"
)

func newCurateCmd(app *App) *cobra.Command {
	var req service.CurateRequest
	var categories []domain.Category
	var from string

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Build a scored place library for a city as a new edition",
		Long: `Discovers candidates (or reads them from --from), enriches and screens
them, scores every place against the brand criteria and stores the result
as a new edition ready for planning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Categories = categories
			if from != "" {
				cands, err := loadCandidates(cmd, from, &req)
				if err != nil {
					return err
				}
				req.Candidates = cands
			}

			stop := formatter.StartSpinner(app.Progress, "Curating "+req.City+"...")
			res, err := app.Curation.Curate(cmd.Context(), req)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCurateResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.City, "city", "", "City to curate")
	cmd.Flags().StringVar(&req.State, "state", "", "State or region code")
	cmd.Flags().StringVar(&req.TemplateVersion, "template", "usa", "Theme template version")
	cmd.Flags().Var(newCategoriesValue(&categories), "category", "Limit discovery to categories (repeatable, comma separated)")
	cmd.Flags().StringVar(&from, "from", "", "Read candidates from a YAML or JSON file instead of discovery")
	cmd.Flags().BoolVar(&req.SkipEnrichment, "skip-enrich", false, "Skip the external facts lookup")
	cmd.Flags().BoolVar(&req.SkipReview, "skip-review", false, "Skip the editorial review pass")

	return cmd
}

// loadCandidates reads an import file. Its city, state and template fill in
// flags the user did not set.
func loadCandidates(cmd *cobra.Command, path string, req *service.CurateRequest) ([]domain.CandidateRecord, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%s is invalid: %w", path, errors.Join(errs...))
	}

	flags := cmd.Flags()
	if !flags.Changed("city") && schema.City != "" {
		req.City = schema.City
	}
	if !flags.Changed("state") && schema.State != "" {
		req.State = schema.State
	}
	if !flags.Changed("template") && schema.Template != "" {
		req.TemplateVersion = schema.Template
	}
	return importer.Convert(schema), nil
}
