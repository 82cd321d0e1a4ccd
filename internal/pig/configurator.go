package pig

import (
	"slices"

	"github.com/rs/zerolog"
)

// Configurator owns one session's catalog and selection. It is not safe for
// concurrent use; callers that share it across goroutines must serialize
// access themselves.
type Configurator struct {
	catalog *Catalog
	sel     Selection
	log     zerolog.Logger

	subs    []subscriber
	nextSub int
}

// Option configures a Configurator.
type Option func(*Configurator)

// WithLogger sets the logger used to trace rejected operations at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Configurator) {
		c.log = l
	}
}

// NewConfigurator takes ownership of catalog and starts from the default
// selection: the first unlocked part of every mandatory category. Pass
// catalog.Clone() when the catalog is shared.
func NewConfigurator(catalog *Catalog, opts ...Option) *Configurator {
	if catalog == nil {
		catalog = &Catalog{}
	}
	c := &Configurator{catalog: catalog, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	for _, cat := range Categories {
		if !cat.Mandatory() {
			continue
		}
		for _, p := range catalog.parts {
			if p.Category == cat && p.Unlocked {
				c.sel.setSlot(cat, p.ID)
				break
			}
		}
	}
	return c
}

// PartsByCategory returns the catalog parts of one category.
func (c *Configurator) PartsByCategory(cat Category) []Part {
	return c.catalog.PartsByCategory(cat)
}

// PartByID looks a catalog part up by id.
func (c *Configurator) PartByID(id string) (Part, bool) {
	return c.catalog.PartByID(id)
}

// Parts returns the whole catalog.
func (c *Configurator) Parts() []Part {
	return c.catalog.Parts()
}

// RegisterPart adds p to the catalog unless its id is taken or it is invalid.
func (c *Configurator) RegisterPart(p Part) bool {
	if !c.catalog.RegisterPart(p) {
		c.log.Debug().Str("part_id", p.ID).Msg("register ignored")
		return false
	}
	c.notify(Change{Kind: ChangeRegistered, Category: p.Category, PartID: p.ID})
	return true
}

// UpdateConnectionPoint replaces a single named connection point of a part.
// This changes the catalog, not the selection.
func (c *Configurator) UpdateConnectionPoint(id, name string, pt Point) bool {
	if !c.catalog.UpdateConnectionPoint(id, name, pt) {
		c.log.Debug().Str("part_id", id).Str("point", name).Msg("connection point update ignored")
		return false
	}
	p := c.catalog.parts[c.catalog.index(id)]
	c.notify(Change{Kind: ChangeConnectionPoint, Category: p.Category, PartID: id})
	return true
}

// UnlockPart makes a locked catalog part selectable.
func (c *Configurator) UnlockPart(id string) bool {
	i := c.catalog.index(id)
	if i < 0 {
		c.log.Debug().Str("part_id", id).Msg("unlock ignored: unknown part")
		return false
	}
	if c.catalog.parts[i].Unlocked {
		return true
	}
	c.catalog.UnlockPart(id)
	c.notify(Change{Kind: ChangeUnlocked, Category: c.catalog.parts[i].Category, PartID: id})
	return true
}

// SelectPart chooses part id for category cat. The part must exist, belong
// to cat and be unlocked; otherwise the call does nothing and returns false.
// Accessories accumulate; every other category holds a single part.
func (c *Configurator) SelectPart(cat Category, id string) bool {
	i := c.catalog.index(id)
	if i < 0 {
		c.log.Debug().Str("category", string(cat)).Str("part_id", id).Msg("select ignored: unknown part")
		return false
	}
	p := c.catalog.parts[i]
	if p.Category != cat {
		c.log.Debug().Str("category", string(cat)).Str("part_id", id).Str("part_category", string(p.Category)).Msg("select ignored: wrong category")
		return false
	}
	if !p.Unlocked {
		c.log.Debug().Str("category", string(cat)).Str("part_id", id).Msg("select ignored: part locked")
		return false
	}

	if cat.MultiValued() {
		if slices.Contains(c.sel.Accessories, id) {
			return true
		}
		c.sel.Accessories = append(c.sel.Accessories, id)
	} else {
		if c.sel.slot(cat) == id {
			return true
		}
		c.sel.setSlot(cat, id)
		if color, ok := c.sel.Colors[cat]; ok && !p.HasColor(color) {
			delete(c.sel.Colors, cat)
		}
	}
	c.notify(Change{Kind: ChangeSelected, Category: cat, PartID: id})
	return true
}

// DeselectPart removes id from an optional category. Mandatory categories
// can only be changed by selecting another part.
func (c *Configurator) DeselectPart(cat Category, id string) bool {
	if !cat.Valid() || cat.Mandatory() || id == "" {
		return false
	}
	if cat.MultiValued() {
		i := slices.Index(c.sel.Accessories, id)
		if i < 0 {
			return false
		}
		c.sel.Accessories = slices.Delete(c.sel.Accessories, i, i+1)
	} else {
		if c.sel.slot(cat) != id {
			return false
		}
		c.sel.setSlot(cat, "")
		delete(c.sel.Colors, cat)
	}
	c.notify(Change{Kind: ChangeDeselected, Category: cat, PartID: id})
	return true
}

// ClearCategory empties an optional category. It returns false for
// mandatory or unknown categories.
func (c *Configurator) ClearCategory(cat Category) bool {
	if !cat.Valid() || cat.Mandatory() {
		return false
	}
	if len(c.sel.IDs(cat)) == 0 {
		return true
	}
	if cat.MultiValued() {
		c.sel.Accessories = nil
	} else {
		c.sel.setSlot(cat, "")
		delete(c.sel.Colors, cat)
	}
	c.notify(Change{Kind: ChangeDeselected, Category: cat})
	return true
}

// SelectColor picks one of the color options of the part selected for a
// single-valued category.
func (c *Configurator) SelectColor(cat Category, color string) bool {
	if cat.MultiValued() {
		return false
	}
	p, ok := c.SelectedPart(cat)
	if !ok || !p.HasColor(color) {
		c.log.Debug().Str("category", string(cat)).Str("color", color).Msg("color ignored")
		return false
	}
	if c.sel.Colors == nil {
		c.sel.Colors = map[Category]string{}
	}
	c.sel.Colors[cat] = color
	c.notify(Change{Kind: ChangeColor, Category: cat, PartID: p.ID})
	return true
}

// SelectedPart resolves the selection for cat against the catalog. For
// accessories it returns the first one that still resolves.
func (c *Configurator) SelectedPart(cat Category) (Part, bool) {
	for _, id := range c.sel.IDs(cat) {
		if p, ok := c.resolve(cat, id); ok {
			return p, true
		}
	}
	return Part{}, false
}

// SelectedParts resolves every id selected for cat, skipping stale ones.
func (c *Configurator) SelectedParts(cat Category) []Part {
	out := []Part{}
	for _, id := range c.sel.IDs(cat) {
		if p, ok := c.resolve(cat, id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Selection returns a copy of the live selection.
func (c *Configurator) Selection() Selection {
	return c.sel.clone()
}

// SaveConfiguration returns a labelled copy of the current selection. Storing
// it is up to the caller.
func (c *Configurator) SaveConfiguration(label string) Snapshot {
	return Snapshot{Label: label, Selection: c.sel.clone()}
}

// LoadConfiguration replaces the selection with a copy of s. Ids are not
// checked against the catalog; stale ones read back as absent.
func (c *Configurator) LoadConfiguration(s Snapshot) {
	c.sel = s.Selection.clone()
	c.notify(Change{Kind: ChangeLoaded})
}

func (c *Configurator) resolve(cat Category, id string) (Part, bool) {
	p, ok := c.catalog.PartByID(id)
	if !ok || p.Category != cat {
		return Part{}, false
	}
	return p, true
}
