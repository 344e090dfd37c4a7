package curation

import (
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// MaxDescriptionLen bounds the library description taken from a snippet.
const MaxDescriptionLen = 100

// Assemble turns a merged candidate into a fully scored and tagged library
// entry. enr may be nil when enrichment was skipped.
func Assemble(c domain.CandidateRecord, city, state string, enr *domain.Enrichment) domain.ScoredPlace {
	name := strings.TrimSpace(c.Name)
	p := domain.ScoredPlace{
		ID:          domain.PlaceID(name, city),
		Name:        name,
		City:        city,
		State:       state,
		Category:    c.Category,
		PriceTier:   domain.PriceFree,
		Description: domain.Truncate(strings.TrimSpace(c.Snippet), MaxDescriptionLen),
		Source:      c.Source,
		SourceURL:   c.SourceURL,
		IsChain:     LooksLikeChain(name),
	}
	if !p.Category.Valid() {
		p.Category = domain.CategoryNature
	}
	if c.PriceHint != nil {
		p.PriceTier = *c.PriceHint
	}
	if enr != nil {
		p.Enrichment = *enr
		if enr.PriceTier != nil {
			p.PriceTier = *enr.PriceTier
		}
	}

	Refresh(&p)
	if c.Outdoor != nil && *c.Outdoor {
		p.Attributes.WarmWeather = true
		p.Tags = BuildTags(p.PriceTier, p.Attributes)
	}
	return p
}

// Refresh recomputes attributes, tags, score, status and notes of p from its
// current facts. Use it after editing a place by hand.
func Refresh(p *domain.ScoredPlace) Result {
	p.Attributes = InferAttributes(p)
	p.Tags = BuildTags(p.PriceTier, p.Attributes)
	return Apply(p)
}
