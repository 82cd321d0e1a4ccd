package pig

import (
	"fmt"
	"maps"
)

// Catalog is the ordered set of known parts. Read methods hand out copies, so
// the only way to change a catalog is through its mutation methods.
type Catalog struct {
	parts []Part
}

// NewCatalog builds a catalog from parts in the given order. Unlike
// RegisterPart it fails on invalid or duplicate parts, since it is fed from
// static data that should be fixed at the source.
func NewCatalog(parts ...Part) (*Catalog, error) {
	c := &Catalog{parts: make([]Part, 0, len(parts))}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("part %q: %w", p.ID, err)
		}
		if c.index(p.ID) >= 0 {
			return nil, fmt.Errorf("part %q: duplicate id", p.ID)
		}
		c.parts = append(c.parts, p.clone())
	}
	return c, nil
}

// Len returns the number of parts in the catalog.
func (c *Catalog) Len() int {
	return len(c.parts)
}

// Parts returns every part in insertion order.
func (c *Catalog) Parts() []Part {
	out := make([]Part, 0, len(c.parts))
	for _, p := range c.parts {
		out = append(out, p.clone())
	}
	return out
}

// PartsByCategory returns the parts of one category in insertion order.
func (c *Catalog) PartsByCategory(cat Category) []Part {
	out := []Part{}
	for _, p := range c.parts {
		if p.Category == cat {
			out = append(out, p.clone())
		}
	}
	return out
}

// PartByID looks a part up by id. The bool is false when no part has that id.
func (c *Catalog) PartByID(id string) (Part, bool) {
	i := c.index(id)
	if i < 0 {
		return Part{}, false
	}
	return c.parts[i].clone(), true
}

// RegisterPart appends p unless a part with the same id already exists or p
// is invalid. It reports whether the part was added.
func (c *Catalog) RegisterPart(p Part) bool {
	if p.Validate() != nil || c.index(p.ID) >= 0 {
		return false
	}
	c.parts = append(c.parts, p.clone())
	return true
}

// UpdateConnectionPoint sets one named connection point on a part, leaving
// its other points untouched.
func (c *Catalog) UpdateConnectionPoint(id, name string, pt Point) bool {
	i := c.index(id)
	if i < 0 || name == "" {
		return false
	}
	points := maps.Clone(c.parts[i].ConnectionPoints)
	if points == nil {
		points = map[string]Point{}
	}
	points[name] = pt
	c.parts[i].ConnectionPoints = points
	return true
}

// UnlockPart makes a locked part selectable.
func (c *Catalog) UnlockPart(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.parts[i].Unlocked = true
	return true
}

// Clone returns an independent copy, one per session.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{parts: c.Parts()}
}

func (c *Catalog) index(id string) int {
	for i := range c.parts {
		if c.parts[i].ID == id {
			return i
		}
	}
	return -1
}
