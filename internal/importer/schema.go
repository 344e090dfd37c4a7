package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is a hand-curated candidate list. City, State and Template
// are optional defaults for the curate request.
type ImportSchema struct {
	City     string        `json:"city,omitempty" yaml:"city,omitempty"`
	State    string        `json:"state,omitempty" yaml:"state,omitempty"`
	Template string        `json:"template,omitempty" yaml:"template,omitempty"`
	Places   []PlaceImport `json:"places" yaml:"places"`
}

// PlaceImport is one candidate in the import file.
type PlaceImport struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	PriceTier   string `json:"price_tier,omitempty" yaml:"price_tier,omitempty"`
	Outdoor     *bool  `json:"outdoor,omitempty" yaml:"outdoor,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// LoadImportSchema reads a candidate file. Files ending in .json are parsed
// as JSON, everything else as YAML.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &schema)
	} else {
		err = yaml.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
