package curation

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestScore_PublicLibrary(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:        "Bennett Martin Public Library",
		Category:    domain.CategoryLibrary,
		Description: "Storytime for toddlers and a cozy children's room",
		PriceTier:   domain.PriceFree,
		Enrichment: domain.Enrichment{
			Rating:      floatPtr(4.7),
			ReviewCount: intPtr(250),
			PlaceTypes:  []string{"library"},
		},
	}

	r := Score(p)
	assert.Equal(t, Breakdown{Accessibility: 100, Nature: 0, Family: 100, Local: 100}, r.Breakdown)
	assert.Equal(t, 75, r.Score)
	assert.Equal(t, domain.StatusConsider, r.Status)
	assert.Equal(t, "Moderate brand alignment - editorial review suggested", r.NotesText())
	assert.Empty(t, r.HardFilter, "\"public\" must not trip the pub filter")
}

func TestScore_NaturePreserveRecommended(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:        "Pioneers Park Nature Center",
		Category:    domain.CategoryNature,
		Description: "Bison, elk and prairie trails on a quiet preserve",
		PriceTier:   domain.PriceFree,
		Enrichment: domain.Enrichment{
			Rating:      floatPtr(4.8),
			ReviewCount: intPtr(3200),
			PlaceTypes:  []string{"park", "tourist_attraction"},
		},
	}

	r := Score(p)
	assert.Equal(t, 100, r.Breakdown.Nature)
	assert.Equal(t, 55, r.Breakdown.Family)
	assert.Equal(t, 100, r.Breakdown.Local)
	assert.Equal(t, 89, r.Score)
	assert.Equal(t, domain.StatusRecommended, r.Status)
	assert.Equal(t, []string{"Auto-approved: high brand alignment"}, r.Notes)
}

func TestScore_MissingEnrichmentIsNeutral(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:     "Holmes Lake",
		Category: domain.CategoryNature,
	}

	r := Score(p)
	assert.Equal(t, Breakdown{Accessibility: 100, Nature: 64, Family: 40, Local: 65}, r.Breakdown)
	assert.Equal(t, 69, r.Score)
	assert.Equal(t, domain.StatusConsider, r.Status)
	assert.Equal(t,
		"Moderate brand alignment - editorial review suggested. No Google rating available - verify manually",
		r.NotesText())
}

func TestScore_AdvisoryNotes(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:      "Tiny Hands Play Cafe",
		Category:  domain.CategoryIndoorPlay,
		PriceTier: domain.Price10To15,
		Enrichment: domain.Enrichment{
			Rating:      floatPtr(4.1),
			ReviewCount: intPtr(4),
		},
	}

	r := Score(p)
	assert.Contains(t, r.Notes, "Price approaching $15 limit")
	assert.Contains(t, r.Notes, "Few reviews - new or unverified listing")
	assert.NotContains(t, r.Notes, "No Google rating available - verify manually")
}

func TestScore_ZeroRatingCountsAsMissing(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:       "Quiet Creek Trail",
		Category:   domain.CategoryNature,
		Enrichment: domain.Enrichment{Rating: floatPtr(0)},
	}
	assert.Contains(t, Score(p).Notes, "No Google rating available - verify manually")
}

func TestScore_HardFilterAdultVenue(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:        "Prairie Creek Winery",
		Category:    domain.CategoryFarm,
		Description: "Vineyard tours on a working farm",
		PriceTier:   domain.PriceFree,
		Enrichment:  domain.Enrichment{Rating: floatPtr(4.9), ReviewCount: intPtr(900)},
	}

	r := Score(p)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, domain.StatusReject, r.Status)
	assert.Equal(t, "Hard filter: Adult-oriented venue", r.NotesText())
	assert.Equal(t, Breakdown{}, r.Breakdown)
}

func TestScore_HardFilterChainRequiresFlag(t *testing.T) {
	p := &domain.ScoredPlace{
		Name:      "Sky Zone Trampoline Park",
		Category:  domain.CategoryIndoorPlay,
		PriceTier: domain.Price15Plus,
		IsChain:   true,
	}
	r := Score(p)
	assert.Equal(t, domain.StatusReject, r.Status)
	assert.Equal(t, "Chain/franchise with primarily commercial focus", r.HardFilter)

	p.IsChain = false
	r = Score(p)
	assert.Empty(t, r.HardFilter, "an unflagged place is scored normally")
	assert.Positive(t, r.Score)

	for _, name := range []string{"Targeted Tutoring Center", "Regalia Farm Park", "Camcorder Museum"} {
		flagged := &domain.ScoredPlace{Name: name, Category: domain.CategoryNature, IsChain: true}
		r = Score(flagged)
		assert.Empty(t, r.HardFilter, "%s only contains a chain name inside a word", name)
		assert.NotEqual(t, domain.StatusReject, r.Status, name)
	}
}

func TestScore_ChainCheckedBeforeAdult(t *testing.T) {
	p := &domain.ScoredPlace{Name: "Main Event Bar", IsChain: true}
	assert.Equal(t, "Chain/franchise with primarily commercial focus", Score(p).HardFilter)
}

func TestScore_UnknownTierScoresFifty(t *testing.T) {
	p := &domain.ScoredPlace{Name: "Somewhere", PriceTier: domain.PriceTier("$30")}
	assert.Equal(t, 50, Score(p).Breakdown.Accessibility)

	p.PriceTier = ""
	assert.Equal(t, 100, Score(p).Breakdown.Accessibility, "an empty tier is treated as FREE")
}

func TestScore_LocalClampedAtZero(t *testing.T) {
	// A flagged chain without a matching indicator survives the hard filter
	// and takes the local penalty.
	p := &domain.ScoredPlace{Name: "Funtopia", Category: domain.CategoryIndoorPlay, IsChain: true}
	r := Score(p)
	assert.Equal(t, 10, r.Breakdown.Local)
	assert.GreaterOrEqual(t, r.Breakdown.Local, 0)
}

func TestApply_WritesBack(t *testing.T) {
	p := &domain.ScoredPlace{Name: "Holmes Lake", Category: domain.CategoryNature}
	r := Apply(p)
	assert.Equal(t, r.Score, p.Score)
	assert.Equal(t, r.Status, p.Status)
	assert.Equal(t, r.NotesText(), p.Notes)
}

// TestScore_PriceMonotonicity property-tests that a cheaper tier never
// scores lower than a pricier one for an otherwise identical place.
func TestScore_PriceMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"Sunken Gardens", "Children's Museum", "Roca Berry Farm", "Kidsville", "Wilderness Park", "Art Loft"}
	types := []string{"park", "library", "museum", "zoo", "natural_feature", "store", "city_hall"}

	for trial := 0; trial < 200; trial++ {
		base := domain.ScoredPlace{
			Name:     names[rng.Intn(len(names))],
			Category: domain.Categories[rng.Intn(len(domain.Categories))],
			IsChain:  rng.Intn(4) == 0,
		}
		if rng.Intn(2) == 0 {
			base.Enrichment.Rating = floatPtr(3 + rng.Float64()*2)
		}
		if rng.Intn(2) == 0 {
			base.Enrichment.ReviewCount = intPtr(rng.Intn(1000))
		}
		for i := rng.Intn(3); i > 0; i-- {
			base.Enrichment.PlaceTypes = append(base.Enrichment.PlaceTypes, types[rng.Intn(len(types))])
		}

		prev := -1
		for i := len(domain.PriceTiers) - 1; i >= 0; i-- {
			p := base
			p.PriceTier = domain.PriceTiers[i]
			score := Score(&p).Score
			require.GreaterOrEqual(t, score, prev,
				"trial %d: tier %s scored %d, below pricier tier's %d", trial, p.PriceTier, score, prev)
			prev = score
		}
	}
}

// TestScore_StatusFollowsScore property-tests that status is a pure function
// of the score whenever no hard filter fired.
func TestScore_StatusFollowsScore(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		p := &domain.ScoredPlace{
			Name:      "Place",
			Category:  domain.Categories[rng.Intn(len(domain.Categories))],
			PriceTier: domain.PriceTiers[rng.Intn(len(domain.PriceTiers))],
			IsChain:   rng.Intn(3) == 0,
		}
		r := Score(p)
		require.Empty(t, r.HardFilter)
		var want domain.Status
		switch {
		case r.Score >= 80:
			want = domain.StatusRecommended
		case r.Score >= 60:
			want = domain.StatusConsider
		case r.Score >= 40:
			want = domain.StatusReview
		default:
			want = domain.StatusReject
		}
		assert.Equal(t, want, r.Status, "trial %d: score %d", trial, r.Score)
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
}
