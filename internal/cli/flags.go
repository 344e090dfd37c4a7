package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// categoriesValue is a repeatable, comma-friendly --category flag that
// rejects unknown categories at parse time.
type categoriesValue struct {
	list *[]domain.Category
}

var _ pflag.Value = categoriesValue{}

func newCategoriesValue(p *[]domain.Category) categoriesValue {
	return categoriesValue{list: p}
}

func (v categoriesValue) String() string {
	if v.list == nil {
		return ""
	}
	parts := make([]string, len(*v.list))
	for i, c := range *v.list {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func (v categoriesValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		c := domain.Category(strings.ToLower(strings.TrimSpace(part)))
		if c == "" {
			continue
		}
		if !c.Valid() {
			return fmt.Errorf("unknown category %q (want one of %s)", part, categoryNames())
		}
		*v.list = append(*v.list, c)
	}
	return nil
}

func (categoriesValue) Type() string { return "category" }

func categoryNames() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// enumValue restricts a string flag to a fixed set of choices.
type enumValue struct {
	value   *string
	choices []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(p *string, def string, choices ...string) *enumValue {
	*p = def
	return &enumValue{value: p, choices: choices}
}

func (v *enumValue) String() string { return *v.value }

func (v *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range v.choices {
		if s == c {
			*v.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(v.choices, ", "))
}

func (v *enumValue) Type() string { return "string" }
