package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	if len(schema.Places) == 0 {
		errs = append(errs, fmt.Errorf("places: at least one place is required"))
	}

	seen := make(map[string]int)
	for i, p := range schema.Places {
		field := fmt.Sprintf("places[%d]", i)
		key := domain.NormalizeKey(p.Name)
		if key == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		} else if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s.name %q duplicates places[%d]", field, p.Name, first))
		} else {
			seen[key] = i
		}
		if p.Category != "" && !domain.Category(strings.ToLower(strings.TrimSpace(p.Category))).Valid() {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", field, p.Category))
		}
		if p.PriceTier != "" {
			if _, ok := domain.ParsePriceTier(p.PriceTier); !ok {
				errs = append(errs, fmt.Errorf("%s.price_tier: invalid value %q", field, p.PriceTier))
			}
		}
	}
	return errs
}
