package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"The Zoo":                  "zoo",
		"Zoo":                      "zoo",
		"  Sunken Gardens! ":       "sunkengardens",
		"Pioneers Park Nature Ctr": "pioneersparknaturectr",
		"Theater Row":              "aterrow",
		"":                         "",
		"---":                      "",
		"Café Zoë":                 "cafzo",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), "NormalizeKey(%q)", in)
	}
}

func TestPlaceID(t *testing.T) {
	assert.Equal(t, "sunken-gardens-lincoln", PlaceID("Sunken Gardens", "Lincoln"))
	assert.Equal(t, "lincoln-children-s-zoo-lincoln", PlaceID("Lincoln Children's Zoo!", "Lincoln"))
	assert.Equal(t, "a-b", PlaceID("--A--", "B--"))
}

func TestSeasonForWeek(t *testing.T) {
	assert.Equal(t, SeasonWinter, SeasonForWeek(1))
	assert.Equal(t, SeasonWinter, SeasonForWeek(9))
	assert.Equal(t, SeasonSpring, SeasonForWeek(10))
	assert.Equal(t, SeasonSpring, SeasonForWeek(22))
	assert.Equal(t, SeasonSummer, SeasonForWeek(23))
	assert.Equal(t, SeasonSummer, SeasonForWeek(35))
	assert.Equal(t, SeasonFall, SeasonForWeek(36))
	assert.Equal(t, SeasonFall, SeasonForWeek(48))
	assert.Equal(t, SeasonWinter, SeasonForWeek(49))
	assert.Equal(t, SeasonWinter, SeasonForWeek(52))
}

func TestParseCategory_UnknownFallsBackToNature(t *testing.T) {
	assert.Equal(t, CategoryMuseum, ParseCategory(" Museum "))
	assert.Equal(t, CategoryIndoorPlay, ParseCategory("indoor_play"))
	assert.Equal(t, CategoryNature, ParseCategory("bowling"))
}

func TestParsePriceTier(t *testing.T) {
	tier, ok := ParsePriceTier("free")
	assert.True(t, ok)
	assert.Equal(t, PriceFree, tier)

	_, ok = ParsePriceTier("$20")
	assert.False(t, ok)

	assert.Less(t, PriceFree.Rank(), Price15Plus.Rank())
	assert.Equal(t, -1, PriceTier("").Rank())
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Farms & Petting Zoos", CategoryFarm.Label())
	assert.Equal(t, "bowling", Category("bowling").Label())
	for _, c := range Categories {
		assert.NotEqual(t, string(c), c.Label(), "category %s has no label", c)
	}
}
