package web

import (
	"net/http"

	"pigpen/internal/pig"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type selectRequest struct {
	Category pig.Category `json:"category"`
	PartID   string       `json:"partId"`
}

func (r selectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.PartID, validation.Required),
	)
}

type colorRequest struct {
	Category pig.Category `json:"category"`
	Color    string       `json:"color"`
}

func (r colorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Color, validation.Required),
	)
}

// GET /selection
func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		writeJSON(w, http.StatusOK, newSelectionView(cfg))
	})
}

// POST /selection
// Unknown, locked or mismatched parts are not an error: the selection is left
// as it was and the response says so.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		applied := cfg.SelectPart(req.Category, req.PartID)
		vm := newSelectionView(cfg)
		writeJSON(w, http.StatusOK, ApplyResult{Applied: applied, Selection: &vm})
	})
}

// POST /selection/color
func (s *Server) handleSelectColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		applied := cfg.SelectColor(req.Category, req.Color)
		vm := newSelectionView(cfg)
		writeJSON(w, http.StatusOK, ApplyResult{Applied: applied, Selection: &vm})
	})
}

// DELETE /selection/{category}[?part=id]
// Without a part the whole (optional) category is cleared.
func (s *Server) handleDeselect(w http.ResponseWriter, r *http.Request) {
	cat := pig.Category(r.PathValue("category"))
	partID := r.URL.Query().Get("part")
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		var applied bool
		if partID != "" {
			applied = cfg.DeselectPart(cat, partID)
		} else {
			applied = cfg.ClearCategory(cat)
		}
		vm := newSelectionView(cfg)
		writeJSON(w, http.StatusOK, ApplyResult{Applied: applied, Selection: &vm})
	})
}
