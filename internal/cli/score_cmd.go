package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// newScoreCmd scores a single ad-hoc place so editors can check how the
// brand criteria treat it before adding it to an import file.
func newScoreCmd() *cobra.Command {
	var (
		cand    domain.CandidateRecord
		cat     string
		price   string
		rating  float64
		reviews int
		city    string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Explain the brand score for one place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cand.Source = domain.SourceManual
			cand.Category = domain.ParseCategory(cat)
			if price != "" {
				tier, ok := domain.ParsePriceTier(price)
				if !ok {
					return fmt.Errorf("invalid --price %q", price)
				}
				cand.PriceHint = &tier
			}

			var enr *domain.Enrichment
			if cmd.Flags().Changed("rating") || cmd.Flags().Changed("reviews") {
				enr = &domain.Enrichment{}
				if cmd.Flags().Changed("rating") {
					enr.Rating = &rating
				}
				if cmd.Flags().Changed("reviews") {
					enr.ReviewCount = &reviews
				}
			}

			place := curation.Assemble(cand, city, "", enr)
			result := curation.Score(&place)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScore(&place, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&cand.Name, "name", "", "Place name (required)")
	cmd.Flags().StringVar(&cat, "category", string(domain.CategoryNature), "Category")
	cmd.Flags().StringVar(&cand.Snippet, "description", "", "Short description")
	cmd.Flags().StringVar(&price, "price", "", "Price tier: FREE, $5_$10, $10_$15 or $15_plus")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Google rating, 0-5")
	cmd.Flags().IntVar(&reviews, "reviews", 0, "Review count")
	cmd.Flags().StringVar(&city, "city", "", "City, for local-chain detection")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
