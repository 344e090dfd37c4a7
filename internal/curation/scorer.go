package curation

import (
	"math"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Breakdown holds the four component scores, each in [0,100].
type Breakdown struct {
	Accessibility int
	Nature        int
	Family        int
	Local         int
}

// Result is the outcome of scoring one place.
type Result struct {
	Score      int
	Status     domain.Status
	Notes      []string
	Breakdown  Breakdown
	HardFilter string // non-empty when a hard filter forced REJECT
}

// NotesText joins the notes the way they are stored and exported.
func (r Result) NotesText() string {
	return strings.Join(r.Notes, ". ")
}

// Scorer computes brand alignment. It holds no mutable state and is safe for
// concurrent use.
type Scorer struct {
	criteria Criteria
}

func NewScorer(c Criteria) *Scorer {
	return &Scorer{criteria: c}
}

var defaultScorer = NewScorer(defaultCriteria)

// Score rates p with the default brand criteria.
func Score(p *domain.ScoredPlace) Result {
	return defaultScorer.Score(p)
}

// Apply scores p with the default criteria and writes score, status and
// notes back onto it.
func Apply(p *domain.ScoredPlace) Result {
	r := defaultScorer.Score(p)
	p.Score = r.Score
	p.Status = r.Status
	p.Notes = r.NotesText()
	return r
}

func (s *Scorer) Score(p *domain.ScoredPlace) Result {
	if reason := s.hardFilter(p); reason != "" {
		return Result{
			Score:      0,
			Status:     domain.StatusReject,
			Notes:      []string{"Hard filter: " + reason},
			HardFilter: reason,
		}
	}

	b := Breakdown{
		Accessibility: s.accessibility(p),
		Nature:        s.nature(p),
		Family:        s.family(p),
		Local:         s.local(p),
	}
	w := s.criteria.Weights
	weighted := float64(b.Accessibility)*w.Accessibility +
		float64(b.Nature)*w.Nature +
		float64(b.Family)*w.Family +
		float64(b.Local)*w.Local
	score := int(math.Round(weighted))

	result := Result{Score: score, Breakdown: b}
	th := s.criteria.Thresholds
	switch {
	case score >= th.Recommended:
		result.Status = domain.StatusRecommended
		result.Notes = append(result.Notes, "Auto-approved: high brand alignment")
	case score >= th.Consider:
		result.Status = domain.StatusConsider
		result.Notes = append(result.Notes, "Moderate brand alignment - editorial review suggested")
	case score >= th.Review:
		result.Status = domain.StatusReview
		result.Notes = append(result.Notes, "Low brand alignment - requires manual review")
	default:
		result.Status = domain.StatusReject
		result.Notes = append(result.Notes, "Below minimum brand alignment threshold")
	}

	if p.PriceTier == domain.Price10To15 {
		result.Notes = append(result.Notes, "Price approaching $15 limit")
	}
	if rating := p.Enrichment.Rating; rating == nil || *rating == 0 {
		result.Notes = append(result.Notes, "No Google rating available - verify manually")
	}
	if reviews := p.Enrichment.ReviewCount; reviews != nil && *reviews < 10 {
		result.Notes = append(result.Notes, "Few reviews - new or unverified listing")
	}
	return result
}

func (s *Scorer) hardFilter(p *domain.ScoredPlace) string {
	if p.IsChain && s.criteria.Chains.AnyWord(p.Name) {
		return "Chain/franchise with primarily commercial focus"
	}
	if s.criteria.AdultVenues.AnyWord(p.Name, p.Description) {
		return "Adult-oriented venue"
	}
	return ""
}

func (s *Scorer) accessibility(p *domain.ScoredPlace) int {
	tier := p.PriceTier
	if tier == "" {
		tier = domain.PriceFree
	}
	if v, ok := s.criteria.Accessibility[tier]; ok {
		return v
	}
	return s.criteria.UnknownTierScore
}

func (s *Scorer) nature(p *domain.ScoredPlace) int {
	score := 0
	if p.Category == domain.CategoryNature || p.Category == domain.CategoryFarm {
		score += 40
	}
	texts := append([]string{p.Name, p.Description, string(p.Category)}, p.Enrichment.PlaceTypes...)
	score += min(12*s.criteria.NatureKeywords.Count(texts...), 60)
	for _, t := range p.Enrichment.PlaceTypes {
		if s.criteria.NatureTypes.Contains(t) {
			score += 15
		}
	}
	return min(score, 100)
}

func (s *Scorer) family(p *domain.ScoredPlace) int {
	score := 40
	texts := append([]string{p.Name, p.Description}, p.Enrichment.PlaceTypes...)
	score += min(10*s.criteria.FamilyKeywords.Count(texts...), 30)

	switch p.Category {
	case domain.CategoryLibrary:
		score += 20
	case domain.CategoryIndoorPlay:
		score += 25
	case domain.CategoryMuseum:
		score += 15
	}

	if r := p.Enrichment.Rating; r != nil {
		switch {
		case *r >= 4.5:
			score += 10
		case *r >= 4.0:
			score += 5
		}
	}
	if n := p.Enrichment.ReviewCount; n != nil && *n >= 100 {
		score += 5
	}
	return min(score, 100)
}

func (s *Scorer) local(p *domain.ScoredPlace) int {
	score := 50
	if p.IsChain {
		score -= 40
	}
	for _, t := range p.Enrichment.PlaceTypes {
		if s.criteria.PublicTypes.Contains(t) {
			score += 30
			break
		}
	}

	switch p.Category {
	case domain.CategoryLibrary:
		score += 25
	case domain.CategoryNature:
		score += 15
	case domain.CategoryFarm:
		score += 20
	}

	if n := p.Enrichment.ReviewCount; n != nil {
		switch {
		case *n >= 500:
			score += 10
		case *n >= 100:
			score += 15
		case *n >= 20:
			score += 10
		}
	}
	return max(0, min(score, 100))
}
