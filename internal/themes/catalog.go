package themes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed presets/*.yaml
var embedded embed.FS

// Catalog holds the presets known to this build plus any directory overrides.
type Catalog struct {
	presets map[string]*Preset
}

// NewCatalog loads the embedded presets, then every *.yaml file in dir.
// A file whose version matches an embedded preset replaces it. dir may be
// empty.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{presets: map[string]*Preset{}}

	entries, err := fs.Glob(embedded, "presets/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range entries {
		data, err := embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", name, err)
		}
		p, err := ParsePreset(data)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		c.presets[p.Version] = p
	}

	if dir == "" {
		return c, nil
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading themes dir: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || (filepath.Ext(f.Name()) != ".yaml" && filepath.Ext(f.Name()) != ".yml") {
			continue
		}
		p, err := LoadPreset(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		c.presets[p.Version] = p
	}
	return c, nil
}

// Get returns the preset for version.
func (c *Catalog) Get(version string) (*Preset, error) {
	p, ok := c.presets[version]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
	return p, nil
}

// List returns every preset sorted by version.
func (c *Catalog) List() []*Preset {
	out := make([]*Preset, 0, len(c.presets))
	for _, p := range c.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}
