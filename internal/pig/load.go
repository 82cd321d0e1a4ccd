package pig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk catalog layout: one list per category.
type catalogFile struct {
	Body        []Part `yaml:"body"`
	Head        []Part `yaml:"head"`
	Eyes        []Part `yaml:"eyes"`
	Ears        []Part `yaml:"ears"`
	Nose        []Part `yaml:"nose"`
	Accessories []Part `yaml:"accessories"`
}

// LoadCatalog loads a part catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c, err := ParseCatalog(b)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cleanPath, err)
	}
	return c, nil
}

// ParseCatalog decodes a YAML catalog. Parts without a category take the one
// of the list they appear in; a part listed under the wrong category is an
// error.
func ParseCatalog(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	groups := []struct {
		cat   Category
		parts []Part
	}{
		{CategoryBody, f.Body},
		{CategoryHead, f.Head},
		{CategoryEyes, f.Eyes},
		{CategoryEars, f.Ears},
		{CategoryNose, f.Nose},
		{CategoryAccessories, f.Accessories},
	}
	var all []Part
	for _, g := range groups {
		for _, p := range g.parts {
			if p.Category == "" {
				p.Category = g.cat
			}
			if p.Category != g.cat {
				return nil, fmt.Errorf("part %q: category %q listed under %q", p.ID, p.Category, g.cat)
			}
			all = append(all, p)
		}
	}
	return NewCatalog(all...)
}
