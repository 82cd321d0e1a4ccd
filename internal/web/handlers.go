package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pigpen/internal/pig"
	"pigpen/internal/session"

	"github.com/rs/zerolog"
)

const (
	cookieName   = "pigpen_sid"
	maxBodyBytes = 1 << 20
)

// Server exposes one pig configurator per browser session over JSON.
type Server struct {
	Catalog *pig.Catalog
	Store   session.Store[*Workspace]
	Designs session.Store[Design]
	Metrics *Metrics
	Log     zerolog.Logger
}

// NewServer wires a server with in-memory stores around a base catalog.
// Every session works on its own clone of catalog.
func NewServer(catalog *pig.Catalog, log zerolog.Logger) *Server {
	return &Server{
		Catalog: catalog,
		Store:   session.NewMemoryStore[*Workspace](),
		Designs: session.NewMemoryStore[Design](),
		Metrics: NewMetrics(),
		Log:     log,
	}
}

// Workspace is a session's configurator. The configurator is not safe for
// concurrent use, so every access goes through mu.
type Workspace struct {
	mu  sync.Mutex
	cfg *pig.Configurator
}

func (ws *Workspace) with(fn func(cfg *pig.Configurator)) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	fn(ws.cfg)
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)

	mux.HandleFunc("GET /parts", s.handleListParts)
	mux.HandleFunc("POST /parts", s.handleRegisterPart)
	mux.HandleFunc("GET /parts/{id}", s.handleGetPart)
	mux.HandleFunc("POST /parts/{id}/unlock", s.handleUnlockPart)
	mux.HandleFunc("PUT /parts/{id}/points/{name}", s.handleUpdatePoint)

	mux.HandleFunc("GET /selection", s.handleGetSelection)
	mux.HandleFunc("POST /selection", s.handleSelect)
	mux.HandleFunc("POST /selection/color", s.handleSelectColor)
	mux.HandleFunc("DELETE /selection/{category}", s.handleDeselect)

	mux.HandleFunc("GET /designs", s.handleListDesigns)
	mux.HandleFunc("POST /designs", s.handleSaveDesign)
	mux.HandleFunc("GET /designs/{id}", s.handleGetDesign)
	mux.HandleFunc("POST /designs/{id}/load", s.handleLoadDesign)
	mux.HandleFunc("GET /designs/{id}/sheet.pdf", s.handleDesignSheet)

	mux.Handle("GET /metrics", s.Metrics.Handler())
	return s.instrument(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/selection", http.StatusFound)
}

// workspace returns the caller's workspace, creating a session on first
// contact or when the cookie refers to a session this process never saw.
func (s *Server) workspace(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Workspace, string, error) {
	id := s.sessionID(r)
	if id != "" {
		ws, ok, err := s.Store.Get(ctx, id)
		if err != nil {
			return nil, "", err
		}
		if ok {
			return ws, id, nil
		}
	} else {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	ws := s.newWorkspace()
	if err := s.Store.Put(ctx, id, ws); err != nil {
		return nil, "", err
	}
	s.Metrics.Sessions.Inc()
	s.Log.Debug().Str("session_id", id).Msg("session created")
	return ws, id, nil
}

func (s *Server) newWorkspace() *Workspace {
	catalog := &pig.Catalog{}
	if s.Catalog != nil {
		catalog = s.Catalog.Clone()
	}
	cfg := pig.NewConfigurator(catalog, pig.WithLogger(s.Log))
	cfg.Subscribe(s.Metrics.observe)
	return &Workspace{cfg: cfg}
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// withWorkspace resolves the session and runs fn with its configurator locked.
func (s *Server) withWorkspace(w http.ResponseWriter, r *http.Request, fn func(cfg *pig.Configurator, sessionID string)) {
	ws, id, err := s.workspace(r.Context(), w, r)
	if err != nil {
		s.Log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	ws.with(func(cfg *pig.Configurator) { fn(cfg, id) })
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// instrument counts and logs every request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.Metrics.Requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		s.Log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("latency", time.Since(start)).
			Msg("http request")
	})
}
