package web

import (
	"time"

	"pigpen/internal/pig"
)

// PartView is a catalog part as the UI sees it.
type PartView struct {
	pig.Part
	DisplayName string `json:"displayName"`
}

func newPartView(p pig.Part) PartView {
	return PartView{Part: p, DisplayName: p.DisplayName()}
}

func newPartViews(parts []pig.Part) []PartView {
	out := make([]PartView, 0, len(parts))
	for _, p := range parts {
		out = append(out, newPartView(p))
	}
	return out
}

// SelectionView pairs the raw selection ids with the parts they resolve to.
// Categories whose ids no longer resolve have an empty list.
type SelectionView struct {
	Selection pig.Selection               `json:"selection"`
	Parts     map[pig.Category][]PartView `json:"parts"`
}

func newSelectionView(cfg *pig.Configurator) SelectionView {
	vm := SelectionView{
		Selection: cfg.Selection(),
		Parts:     make(map[pig.Category][]PartView, len(pig.Categories)),
	}
	for _, cat := range pig.Categories {
		vm.Parts[cat] = newPartViews(cfg.SelectedParts(cat))
	}
	return vm
}

// ApplyResult answers every write: invalid references are not errors, they
// just leave Applied false.
type ApplyResult struct {
	Applied   bool           `json:"applied"`
	Selection *SelectionView `json:"selection,omitempty"`
}

// Design is a saved snapshot. Only the session that saved it can see it.
type Design struct {
	ID       string       `json:"id"`
	Owner    string       `json:"-"`
	SavedAt  time.Time    `json:"savedAt"`
	Snapshot pig.Snapshot `json:"snapshot"`
}
