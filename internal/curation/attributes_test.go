package curation

import (
	"testing"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInferAttributes_CategoryDefaults(t *testing.T) {
	lib := &domain.ScoredPlace{Name: "Gere Branch", Category: domain.CategoryLibrary}
	a := InferAttributes(lib)
	assert.True(t, a.WinterSpot)
	assert.False(t, a.WarmWeather)
	assert.True(t, a.BabyFriendly)
	assert.True(t, a.ToddlerSafe)
	assert.True(t, a.PreschoolPlus)

	farm := &domain.ScoredPlace{Name: "Roca Berry", Category: domain.CategoryFarm}
	a = InferAttributes(farm)
	assert.True(t, a.WarmWeather)
	assert.False(t, a.WinterSpot)
}

func TestInferAttributes_SeasonalUsesKeywords(t *testing.T) {
	plain := &domain.ScoredPlace{Name: "Holiday Lights", Category: domain.CategorySeasonal, Description: "Drive-through light display"}
	a := InferAttributes(plain)
	assert.False(t, a.WarmWeather)
	assert.False(t, a.WinterSpot)

	patch := &domain.ScoredPlace{Name: "Vala's Pumpkin Patch", Category: domain.CategorySeasonal}
	assert.True(t, InferAttributes(patch).WarmWeather)

	theater := &domain.ScoredPlace{Name: "Holiday Show", Category: domain.CategorySeasonal,
		Enrichment: domain.Enrichment{PlaceTypes: []string{"movie_theater"}}}
	assert.True(t, InferAttributes(theater).WinterSpot)
}

func TestInferAttributes_IndoorKeywordOnOutdoorCategory(t *testing.T) {
	p := &domain.ScoredPlace{Name: "Chet Ager Nature Center", Category: domain.CategoryNature}
	a := InferAttributes(p)
	assert.True(t, a.WarmWeather)
	assert.True(t, a.WinterSpot, "\"center\" marks an indoor space")
}

func TestBuildTags_Order(t *testing.T) {
	all := domain.Attributes{BabyFriendly: true, ToddlerSafe: true, PreschoolPlus: true, WarmWeather: true, WinterSpot: true}
	assert.Equal(t, "💲👶🧒👦☀️❄️", BuildTags(domain.Price5To10, all))

	some := domain.Attributes{ToddlerSafe: true, WinterSpot: true}
	assert.Equal(t, "💲💲💲🧒❄️", BuildTags(domain.Price15Plus, some))
}

func TestBuildTags_UnknownTierRendersFree(t *testing.T) {
	assert.Equal(t, "🔷", BuildTags("", domain.Attributes{}))
	assert.Equal(t, "🔷", BuildTags("$99", domain.Attributes{}))
}

func TestLegend(t *testing.T) {
	legend := Legend()
	assert.Len(t, legend, 9)
	assert.Equal(t, "🔷", legend[0].Icon)
	assert.Equal(t, WinterTag, legend[len(legend)-1])
}

func TestAssemble(t *testing.T) {
	hint := domain.Price5To10
	outdoor := true
	c := domain.CandidateRecord{
		Name:      "  Lincoln Children's Zoo ",
		Source:    domain.SourceGemini,
		Snippet:   "Hands-on animal encounters for little ones",
		Category:  domain.CategoryFarm,
		SourceURL: "https://example.org/zoo",
		Outdoor:   &outdoor,
		PriceHint: &hint,
	}

	p := Assemble(c, "Lincoln", "NE", nil)
	assert.Equal(t, "lincoln-children-s-zoo-lincoln", p.ID)
	assert.Equal(t, "Lincoln Children's Zoo", p.Name)
	assert.Equal(t, domain.Price5To10, p.PriceTier)
	assert.True(t, p.Attributes.WarmWeather)
	assert.False(t, p.IsChain)
	assert.NotEmpty(t, p.Tags)
	assert.NotEmpty(t, p.Status)

	tier := domain.Price10To15
	enriched := Assemble(c, "Lincoln", "NE", &domain.Enrichment{PriceTier: &tier, Rating: floatPtr(4.6)})
	assert.Equal(t, domain.Price10To15, enriched.PriceTier, "enrichment wins over the source hint")
	assert.Contains(t, enriched.Notes, "Price approaching $15 limit")
}

func TestAssemble_ChainAndCategoryFallback(t *testing.T) {
	c := domain.CandidateRecord{Name: "McDonald's PlayPlace", Category: "arcade"}
	p := Assemble(c, "Omaha", "NE", nil)
	assert.True(t, p.IsChain)
	assert.Equal(t, domain.CategoryNature, p.Category)
	assert.Equal(t, domain.StatusReject, p.Status)
	assert.Equal(t, "Hard filter: Chain/franchise with primarily commercial focus", p.Notes)
}

func TestAssemble_TruncatesDescription(t *testing.T) {
	long := make([]rune, 0, 150)
	for i := 0; i < 150; i++ {
		long = append(long, 'é')
	}
	p := Assemble(domain.CandidateRecord{Name: "X Park", Snippet: string(long)}, "Lincoln", "NE", nil)
	assert.Len(t, []rune(p.Description), MaxDescriptionLen)
}
