package pig

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the slot a part fills on the pig.
type Category string

const (
	CategoryBody        Category = "body"
	CategoryHead        Category = "head"
	CategoryEyes        Category = "eyes"
	CategoryEars        Category = "ears"
	CategoryNose        Category = "nose"
	CategoryAccessories Category = "accessories"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryBody,
	CategoryHead,
	CategoryEyes,
	CategoryEars,
	CategoryNose,
	CategoryAccessories,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Mandatory categories always hold a selection when the catalog can fill them.
func (c Category) Mandatory() bool {
	return c == CategoryBody || c == CategoryHead
}

// MultiValued categories hold a set of part ids instead of a single one.
func (c Category) MultiValued() bool {
	return c == CategoryAccessories
}

// Point is a 2D coordinate on a part, used by renderers to line parts up.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Part is a single selectable component from the catalog.
type Part struct {
	ID               string           `yaml:"id" json:"id"`
	Name             string           `yaml:"name" json:"name"`
	Category         Category         `yaml:"category" json:"category"`
	AssetPath        string           `yaml:"assetPath" json:"assetPath"`
	ConnectionPoints map[string]Point `yaml:"connectionPoints" json:"connectionPoints,omitempty"`
	ColorOptions     []string         `yaml:"colorOptions" json:"colorOptions,omitempty"`
	Unlocked         bool             `yaml:"unlocked" json:"unlocked"`
	PreviewImage     string           `yaml:"previewImage" json:"previewImage,omitempty"`
}

// DisplayName returns the part name, falling back to a title-cased id.
func (p Part) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(p.ID)
	return cases.Title(language.English).String(words)
}

// HasColor reports whether color is one of the part's color options.
func (p Part) HasColor(color string) bool {
	return slices.Contains(p.ColorOptions, color)
}

func (p Part) clone() Part {
	p.ConnectionPoints = maps.Clone(p.ConnectionPoints)
	p.ColorOptions = slices.Clone(p.ColorOptions)
	return p
}

// Selection maps each category to the chosen part id(s). It only ever holds
// ids; parts are resolved against the catalog on read.
type Selection struct {
	Body        string              `yaml:"body" json:"body"`
	Head        string              `yaml:"head" json:"head"`
	Eyes        string              `yaml:"eyes,omitempty" json:"eyes,omitempty"`
	Ears        string              `yaml:"ears,omitempty" json:"ears,omitempty"`
	Nose        string              `yaml:"nose,omitempty" json:"nose,omitempty"`
	Accessories []string            `yaml:"accessories,omitempty" json:"accessories,omitempty"`
	Colors      map[Category]string `yaml:"colors,omitempty" json:"colors,omitempty"`
}

// IDs returns the part ids selected for c, in selection order.
func (s Selection) IDs(c Category) []string {
	if c.MultiValued() {
		return slices.Clone(s.Accessories)
	}
	if id := s.slot(c); id != "" {
		return []string{id}
	}
	return nil
}

func (s Selection) slot(c Category) string {
	switch c {
	case CategoryBody:
		return s.Body
	case CategoryHead:
		return s.Head
	case CategoryEyes:
		return s.Eyes
	case CategoryEars:
		return s.Ears
	case CategoryNose:
		return s.Nose
	default:
		return ""
	}
}

func (s *Selection) setSlot(c Category, id string) {
	switch c {
	case CategoryBody:
		s.Body = id
	case CategoryHead:
		s.Head = id
	case CategoryEyes:
		s.Eyes = id
	case CategoryEars:
		s.Ears = id
	case CategoryNose:
		s.Nose = id
	}
}

func (s Selection) clone() Selection {
	s.Accessories = slices.Clone(s.Accessories)
	s.Colors = maps.Clone(s.Colors)
	return s
}

// Snapshot is a labelled copy of a selection, handed to whatever persists it.
type Snapshot struct {
	Label     string `yaml:"label" json:"label"`
	Selection `yaml:",inline"`
}
