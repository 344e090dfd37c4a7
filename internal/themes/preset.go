package themes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Preset is one named 52-week theme list.
type Preset struct {
	Version     string             `yaml:"version"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Themes      []domain.WeekTheme `yaml:"themes"`
}

// ParsePreset decodes a YAML preset document and validates its theme list.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}
	if p.Version == "" {
		return nil, fmt.Errorf("%w: preset version is required", ErrInvalidThemeList)
	}
	if err := Validate(p.Themes); err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Version, err)
	}
	return &p, nil
}

// LoadPreset reads and parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}
	return ParsePreset(data)
}

// ThemeFor returns the theme for week, if present.
func (p *Preset) ThemeFor(week int) (domain.WeekTheme, bool) {
	for _, t := range p.Themes {
		if t.Week == week {
			return t, true
		}
	}
	return domain.WeekTheme{}, false
}
