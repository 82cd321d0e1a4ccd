package web

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"pigpen/internal/pig"
	"pigpen/internal/sheet"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxLabelLen = 64

type saveDesignRequest struct {
	Label string `json:"label"`
}

func (r saveDesignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label, validation.Required, validation.RuneLength(1, maxLabelLen)),
	)
}

// POST /designs
func (s *Server) handleSaveDesign(w http.ResponseWriter, r *http.Request) {
	var req saveDesignRequest
	if !s.decode(w, r, &req) {
		return
	}
	req.Label = strings.TrimSpace(req.Label)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var d Design
	s.withWorkspace(w, r, func(cfg *pig.Configurator, sessionID string) {
		d = Design{
			ID:       s.Designs.NewID(),
			Owner:    sessionID,
			SavedAt:  time.Now().UTC(),
			Snapshot: cfg.SaveConfiguration(req.Label),
		}
	})
	if d.ID == "" {
		return
	}
	if err := s.Designs.Put(r.Context(), d.ID, d); err != nil {
		s.Log.Error().Err(err).Str("design_id", d.ID).Msg("save design")
		writeError(w, http.StatusInternalServerError, "failed to save design")
		return
	}
	s.Log.Info().Str("design_id", d.ID).Str("label", d.Snapshot.Label).Msg("design saved")
	writeJSON(w, http.StatusCreated, d)
}

// GET /designs lists the caller's designs, oldest first.
func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	_, sessionID, err := s.workspace(r.Context(), w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	all, err := s.Designs.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list designs")
		return
	}
	out := []Design{}
	for _, d := range all {
		if d.Owner == sessionID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SavedAt.Before(out[j].SavedAt)
	})
	writeJSON(w, http.StatusOK, map[string]any{"designs": out})
}

// GET /designs/{id}
func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	d, ok := s.ownedDesign(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// POST /designs/{id}/load
func (s *Server) handleLoadDesign(w http.ResponseWriter, r *http.Request) {
	d, ok := s.ownedDesign(w, r)
	if !ok {
		return
	}
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		cfg.LoadConfiguration(d.Snapshot)
		vm := newSelectionView(cfg)
		writeJSON(w, http.StatusOK, ApplyResult{Applied: true, Selection: &vm})
	})
}

// GET /designs/{id}/sheet.pdf
func (s *Server) handleDesignSheet(w http.ResponseWriter, r *http.Request) {
	d, ok := s.ownedDesign(w, r)
	if !ok {
		return
	}
	var (
		pdf []byte
		err error
	)
	s.withWorkspace(w, r, func(cfg *pig.Configurator, _ string) {
		pdf, err = sheet.Generate(d.Snapshot, cfg)
	})
	if err != nil {
		s.Log.Error().Err(err).Str("design_id", d.ID).Msg("render design sheet")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="pig-design.pdf"`)
	_, _ = w.Write(pdf)
}

// ownedDesign loads the design named in the path. Designs of other sessions
// answer 404 exactly like missing ones.
func (s *Server) ownedDesign(w http.ResponseWriter, r *http.Request) (Design, bool) {
	sessionID := s.sessionID(r)
	d, ok, err := s.lookupDesign(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load design")
		return Design{}, false
	}
	if !ok || sessionID == "" || d.Owner != sessionID {
		writeError(w, http.StatusNotFound, "design not found")
		return Design{}, false
	}
	return d, true
}

func (s *Server) lookupDesign(ctx context.Context, id string) (Design, bool, error) {
	if id == "" {
		return Design{}, false, nil
	}
	return s.Designs.Get(ctx, id)
}
