package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

var (
	// ErrInvalidThemeList indicates a theme list that is not exactly weeks 1..52.
	ErrInvalidThemeList = errors.New("invalid theme list")

	// ErrUnknownVersion indicates a template version with no preset.
	ErrUnknownVersion = errors.New("unknown template version")
)

// Problems checks a theme list for structural errors.
// Returns a slice of errors (empty if valid).
func Problems(list []domain.WeekTheme) []error {
	var errs []error

	if len(list) != domain.WeeksPerYear {
		errs = append(errs, fmt.Errorf("expected %d themes, got %d", domain.WeeksPerYear, len(list)))
	}

	seen := map[int]bool{}
	for i, t := range list {
		if t.Week < 1 || t.Week > domain.WeeksPerYear {
			errs = append(errs, fmt.Errorf("theme[%d]: week %d out of range", i, t.Week))
			continue
		}
		if seen[t.Week] {
			errs = append(errs, fmt.Errorf("theme[%d]: duplicate week %d", i, t.Week))
		}
		seen[t.Week] = true
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("theme[%d]: title is required", i))
		}
	}

	for w := 1; w <= domain.WeeksPerYear; w++ {
		if !seen[w] {
			errs = append(errs, fmt.Errorf("week %d missing", w))
		}
	}

	return errs
}

// Validate reports whether list covers weeks 1..52 exactly once.
func Validate(list []domain.WeekTheme) error {
	errs := Problems(list)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidThemeList, errors.Join(errs...))
}
