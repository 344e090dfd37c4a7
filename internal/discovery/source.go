package discovery

import (
	"context"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Request scopes one discovery run.
type Request struct {
	City       string
	State      string
	Categories []domain.Category // empty means all categories
}

// categories returns the requested categories or the full set.
func (r Request) categories() []domain.Category {
	if len(r.Categories) == 0 {
		return domain.Categories
	}
	return r.Categories
}

// Location renders "City State" for search queries.
func (r Request) Location() string {
	return strings.TrimSpace(r.City + " " + r.State)
}

// Source finds candidate places. Implementations must honor ctx.
type Source interface {
	Tag() domain.SourceTag
	Discover(ctx context.Context, req Request) ([]domain.CandidateRecord, error)
}

// Priority is the merge order: earlier sources win duplicate names.
var Priority = []domain.SourceTag{
	domain.SourceGemini,
	domain.SourceGrokX,
	domain.SourceGrokWeb,
	domain.SourceGrokBlog,
	domain.SourceGrokSeasonal,
	domain.SourceBrave,
	domain.SourceSample,
}

var targetCounts = map[domain.Category]int{
	domain.CategoryNature:     15,
	domain.CategoryFarm:       8,
	domain.CategoryLibrary:    6,
	domain.CategoryMuseum:     8,
	domain.CategoryIndoorPlay: 8,
	domain.CategoryGarden:     8,
	domain.CategorySeasonal:   8,
}

// TargetCount is how many places a category aims to collect.
func TargetCount(c domain.Category) int {
	if n, ok := targetCounts[c]; ok {
		return n
	}
	return 8
}

// priceFromCost maps tier codes and the free-form cost labels some sources
// return ("free", "under $10", "under $20").
func priceFromCost(cost string) *domain.PriceTier {
	c := strings.ToLower(strings.TrimSpace(cost))
	if c == "" {
		return nil
	}
	if t, ok := domain.ParsePriceTier(c); ok {
		return &t
	}
	var tier domain.PriceTier
	switch {
	case strings.Contains(c, "free"):
		tier = domain.PriceFree
	case strings.Contains(c, "10"):
		tier = domain.Price5To10
	case strings.Contains(c, "15"), strings.Contains(c, "20"):
		tier = domain.Price10To15
	default:
		return nil
	}
	return &tier
}
