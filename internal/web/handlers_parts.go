package web

import (
	"net/http"

	"pigpen/internal/pig"
)

// GET /parts?category=head
func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	cat := pig.Category(r.URL.Query().Get("category"))
	if cat != "" && !cat.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		parts := cfg.Parts()
		if cat != "" {
			parts = cfg.PartsByCategory(cat)
		}
		writeJSON(w, http.StatusOK, map[string]any{"parts": newPartViews(parts)})
	})
}

// GET /parts/{id}
func (s *Server) handleGetPart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		p, ok := cfg.PartByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "part not found")
			return
		}
		writeJSON(w, http.StatusOK, newPartView(p))
	})
}

// POST /parts
func (s *Server) handleRegisterPart(w http.ResponseWriter, r *http.Request) {
	var p pig.Part
	if !s.decode(w, r, &p) {
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		if !cfg.RegisterPart(p) {
			writeError(w, http.StatusConflict, "part id already registered")
			return
		}
		stored, _ := cfg.PartByID(p.ID)
		writeJSON(w, http.StatusCreated, newPartView(stored))
	})
}

// POST /parts/{id}/unlock
func (s *Server) handleUnlockPart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		writeJSON(w, http.StatusOK, ApplyResult{Applied: cfg.UnlockPart(id)})
	})
}

// PUT /parts/{id}/points/{name} with a {"x":..,"y":..} body
func (s *Server) handleUpdatePoint(w http.ResponseWriter, r *http.Request) {
	id, name := r.PathValue("id"), r.PathValue("name")
	var pt pig.Point
	if !s.decode(w, r, &pt) {
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		writeJSON(w, http.StatusOK, ApplyResult{Applied: cfg.UpdateConnectionPoint(id, name, pt)})
	})
}
