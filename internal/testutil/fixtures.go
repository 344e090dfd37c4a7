package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// EditionOption customizes NewTestEdition.
type EditionOption func(*domain.Edition)

func WithState(s string) EditionOption {
	return func(e *domain.Edition) {
		e.State = s
	}
}

func WithTemplate(version string) EditionOption {
	return func(e *domain.Edition) {
		e.TemplateVersion = version
	}
}

func WithEditionStatus(s domain.EditionStatus) EditionOption {
	return func(e *domain.Edition) {
		e.Status = s
	}
}

func NewTestEdition(city string, opts ...EditionOption) *domain.Edition {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Edition{
		ID:              uuid.New().String(),
		City:            city,
		State:           "NE",
		TemplateVersion: "usa",
		Status:          domain.EditionDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlaceOption customizes NewTestPlace.
type PlaceOption func(*domain.ScoredPlace)

func WithScore(score int, status domain.Status) PlaceOption {
	return func(p *domain.ScoredPlace) {
		p.Score = score
		p.Status = status
	}
}

func WithPrice(t domain.PriceTier) PlaceOption {
	return func(p *domain.ScoredPlace) {
		p.PriceTier = t
	}
}

func WithDescription(d string) PlaceOption {
	return func(p *domain.ScoredPlace) {
		p.Description = d
	}
}

func WithRating(rating float64, reviews int) PlaceOption {
	return func(p *domain.ScoredPlace) {
		p.Enrichment.Rating = &rating
		p.Enrichment.ReviewCount = &reviews
	}
}

func WithWeeks(weeks ...int) PlaceOption {
	return func(p *domain.ScoredPlace) {
		p.WeekSuggestions = weeks
	}
}

func NewTestPlace(name string, cat domain.Category, opts ...PlaceOption) domain.ScoredPlace {
	p := domain.ScoredPlace{
		ID:        domain.PlaceID(name, "lincoln"),
		Name:      name,
		City:      "Lincoln",
		State:     "NE",
		Category:  cat,
		PriceTier: domain.PriceFree,
		Source:    domain.SourceSample,
		Score:     60,
		Status:    domain.StatusConsider,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestLibrary returns n eligible places cycling through every category.
func NewTestLibrary(n int) []domain.ScoredPlace {
	out := make([]domain.ScoredPlace, n)
	for i := range out {
		cat := domain.Categories[i%len(domain.Categories)]
		out[i] = NewTestPlace(fmt.Sprintf("Test Place %02d", i), cat, WithScore(40+i%50, domain.StatusConsider))
	}
	return out
}
