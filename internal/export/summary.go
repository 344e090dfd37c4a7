package export

import "github.com/alexanderramin/wildercal/internal/domain"

// CategorySummary counts one category's share of a library.
type CategorySummary struct {
	Category domain.Category
	Total    int
	ByStatus map[domain.Status]int
	ByPrice  map[domain.PriceTier]int
	// AvgScore averages the non-zero scores, rounded to the nearest integer.
	AvgScore int
}

// Summarize groups places by category in domain.Categories order. Categories
// with no places are omitted.
func Summarize(places []domain.ScoredPlace) []CategorySummary {
	groups := make(map[domain.Category]*CategorySummary)
	sums := make(map[domain.Category][2]int)
	for _, p := range places {
		g, ok := groups[p.Category]
		if !ok {
			g = &CategorySummary{
				Category: p.Category,
				ByStatus: make(map[domain.Status]int),
				ByPrice:  make(map[domain.PriceTier]int),
			}
			groups[p.Category] = g
		}
		g.Total++
		g.ByStatus[p.Status]++
		g.ByPrice[p.PriceTier]++
		if p.Score > 0 {
			s := sums[p.Category]
			sums[p.Category] = [2]int{s[0] + p.Score, s[1] + 1}
		}
	}

	order := append([]domain.Category(nil), domain.Categories...)
	for _, p := range places {
		if !p.Category.Valid() && !containsCategory(order, p.Category) {
			order = append(order, p.Category)
		}
	}

	out := make([]CategorySummary, 0, len(groups))
	for _, c := range order {
		g, ok := groups[c]
		if !ok {
			continue
		}
		if s := sums[c]; s[1] > 0 {
			g.AvgScore = (s[0]*2 + s[1]) / (s[1] * 2)
		}
		out = append(out, *g)
	}
	return out
}

func containsCategory(list []domain.Category, c domain.Category) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}
