package curation

import (
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Tag is one display icon with its legend label.
type Tag struct {
	Icon  string
	Label string
}

var (
	priceTags = map[domain.PriceTier]Tag{
		domain.PriceFree:   {Icon: "🔷", Label: "FREE admission"},
		domain.Price5To10:  {Icon: "💲", Label: "$5-$10/person"},
		domain.Price10To15: {Icon: "💲💲", Label: "$10-$15/person"},
		domain.Price15Plus: {Icon: "💲💲💲", Label: "$15+/person"},
	}
	BabyTag      = Tag{Icon: "👶", Label: "Baby-friendly (0-12mo)"}
	ToddlerTag   = Tag{Icon: "🧒", Label: "Toddler-safe (1-3yr)"}
	PreschoolTag = Tag{Icon: "👦", Label: "Preschool+ (3-5yr)"}
	WarmTag      = Tag{Icon: "☀️", Label: "Warm weather"}
	WinterTag    = Tag{Icon: "❄️", Label: "Winter spot"}
)

// PriceTag returns the tag for tier. Empty and unknown tiers render as FREE.
func PriceTag(tier domain.PriceTier) Tag {
	if t, ok := priceTags[tier]; ok {
		return t
	}
	return priceTags[domain.PriceFree]
}

// TagsFor lists the tags for a place in display order: price, then ages
// youngest first, then warm before winter.
func TagsFor(tier domain.PriceTier, a domain.Attributes) []Tag {
	tags := []Tag{PriceTag(tier)}
	if a.BabyFriendly {
		tags = append(tags, BabyTag)
	}
	if a.ToddlerSafe {
		tags = append(tags, ToddlerTag)
	}
	if a.PreschoolPlus {
		tags = append(tags, PreschoolTag)
	}
	if a.WarmWeather {
		tags = append(tags, WarmTag)
	}
	if a.WinterSpot {
		tags = append(tags, WinterTag)
	}
	return tags
}

// BuildTags concatenates the icons of TagsFor.
func BuildTags(tier domain.PriceTier, a domain.Attributes) string {
	var b strings.Builder
	for _, t := range TagsFor(tier, a) {
		b.WriteString(t.Icon)
	}
	return b.String()
}

// Legend lists every tag in display order, for icon keys in exports.
func Legend() []Tag {
	out := make([]Tag, 0, len(domain.PriceTiers)+5)
	for _, tier := range domain.PriceTiers {
		out = append(out, priceTags[tier])
	}
	return append(out, BabyTag, ToddlerTag, PreschoolTag, WarmTag, WinterTag)
}
