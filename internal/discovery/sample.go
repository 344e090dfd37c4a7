package discovery

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/wildercal/internal/domain"
)

//go:embed samples/places.yaml
var samplePlacesYAML []byte

type samplePlace struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Outdoor     bool    `yaml:"outdoor"`
	PriceTier   string  `yaml:"price_tier"`
	Address     string  `yaml:"address"`
	Website     string  `yaml:"website"`
	Phone       string  `yaml:"phone"`
	Rating      float64 `yaml:"rating"`
	Reviews     int     `yaml:"reviews"`
}

var (
	samplesOnce sync.Once
	samples     []samplePlace
	samplesErr  error
)

func loadSamples() ([]samplePlace, error) {
	samplesOnce.Do(func() {
		if err := yaml.Unmarshal(samplePlacesYAML, &samples); err != nil {
			samplesErr = fmt.Errorf("parsing sample places: %w", err)
		}
	})
	return samples, samplesErr
}

// SampleSource serves a built-in library so curation and planning work
// without any discovery credentials.
type SampleSource struct{}

func (SampleSource) Tag() domain.SourceTag { return domain.SourceSample }

func (SampleSource) Discover(ctx context.Context, req Request) ([]domain.CandidateRecord, error) {
	list, err := loadSamples()
	if err != nil {
		return nil, err
	}
	want := map[domain.Category]bool{}
	for _, c := range req.categories() {
		want[c] = true
	}
	var out []domain.CandidateRecord
	for _, s := range list {
		cat := domain.ParseCategory(s.Category)
		if !want[cat] {
			continue
		}
		outdoor := s.Outdoor
		rec := domain.CandidateRecord{
			Name:      s.Name,
			Source:    domain.SourceSample,
			Snippet:   s.Description,
			Category:  cat,
			SourceURL: s.Website,
			Outdoor:   &outdoor,
		}
		if tier, ok := domain.ParsePriceTier(s.PriceTier); ok {
			rec.PriceHint = &tier
		}
		out = append(out, rec)
	}
	return out, ctx.Err()
}

// SampleEnrichments returns the enrichment facts bundled with the sample
// library, keyed by normalized name.
func SampleEnrichments() (map[string]domain.Enrichment, error) {
	list, err := loadSamples()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Enrichment, len(list))
	for _, s := range list {
		e := domain.Enrichment{
			ExternalID: domain.PlaceID(s.Name, "sample"),
			Address:    s.Address,
			Website:    s.Website,
			Phone:      s.Phone,
		}
		if s.Rating > 0 {
			rating := s.Rating
			e.Rating = &rating
		}
		if s.Reviews > 0 {
			reviews := s.Reviews
			e.ReviewCount = &reviews
		}
		if tier, ok := domain.ParsePriceTier(s.PriceTier); ok {
			e.PriceTier = &tier
		}
		out[domain.NormalizeKey(s.Name)] = e
	}
	return out, nil
}
