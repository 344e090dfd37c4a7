package importer

import (
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Convert turns a validated schema into candidate records tagged as manual
// entries. Call ValidateImportSchema first; an empty category becomes nature.
func Convert(schema *ImportSchema) []domain.CandidateRecord {
	out := make([]domain.CandidateRecord, 0, len(schema.Places))
	for _, p := range schema.Places {
		rec := domain.CandidateRecord{
			Name:      strings.TrimSpace(p.Name),
			Source:    domain.SourceManual,
			Snippet:   strings.TrimSpace(p.Description),
			Category:  domain.ParseCategory(p.Category),
			SourceURL: strings.TrimSpace(p.URL),
			Outdoor:   p.Outdoor,
		}
		if tier, ok := domain.ParsePriceTier(p.PriceTier); ok {
			rec.PriceHint = &tier
		}
		out = append(out, rec)
	}
	return out
}
