// Package http exposes parsing and step-wise session playback as a
// JSON API. Sessions are persisted through a ports.SessionStore, so a
// client can parse a script once and then step through it across
// requests (or across server instances with a shared backend).
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/lex/internal/logging"
	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/aretw0/lex/pkg/player"
	"github.com/aretw0/lex/pkg/ports"
)

// Server handles the REST API over a session store.
type Server struct {
	store   ports.SessionStore
	logger  *slog.Logger
	metrics *metrics
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(store ports.SessionStore, opts ...Option) http.Handler {
	server := &Server{
		store:   store,
		logger:  logging.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))
	r.Post("/parse", server.Parse)
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", server.ListSessions)
		r.Post("/", server.CreateSession)
		r.Get("/{id}", server.GetSession)
		r.Post("/{id}/step", server.StepSession)
		r.Delete("/{id}", server.DeleteSession)
	})
	return r
}

// metrics groups the Prometheus collectors for the API.
type metrics struct {
	registry     *prometheus.Registry
	parsed       prometheus.Counter
	warnings     prometheus.Counter
	sessionSteps *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		parsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lex_scripts_parsed_total",
			Help: "Scripts parsed via the API",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lex_parse_warnings_total",
			Help: "Advisory warnings emitted while parsing",
		}),
		sessionSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lex_session_steps_total",
			Help: "Playback steps executed, by step kind",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.parsed, m.warnings, m.sessionSteps)
	return m
}

// ParseRequest is the body of POST /parse and POST /sessions.
type ParseRequest struct {
	Script    string `json:"script"`
	SessionID string `json:"session_id,omitempty"`
}

// ParseResponse is the result of POST /parse.
type ParseResponse struct {
	Dialogue *dialogue.Dialogue `json:"dialogue"`
	Warnings []string           `json:"warnings,omitempty"`
}

// SessionResponse describes a session and its current state.
type SessionResponse struct {
	SessionID string        `json:"session_id"`
	State     *player.State `json:"state"`
	Warnings  []string      `json:"warnings,omitempty"`
}

// StepResponse is the result of POST /sessions/{id}/step.
type StepResponse struct {
	SessionID string        `json:"session_id"`
	Tick      *player.Tick  `json:"tick"`
	State     *player.State `json:"state"`
	Done      bool          `json:"done"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Parse handles POST /parse: stateless script parsing.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, warnings := parser.Parse(body.Script)
	s.metrics.parsed.Inc()
	s.metrics.warnings.Add(float64(len(warnings)))

	s.respond(w, http.StatusOK, ParseResponse{Dialogue: doc, Warnings: warnings})
}

// CreateSession handles POST /sessions: parse a script and open a
// playback session at its first step.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, warnings := parser.Parse(body.Script)
	s.metrics.parsed.Inc()
	s.metrics.warnings.Add(float64(len(warnings)))

	state, err := player.NewEngine(doc).Start()
	if err != nil {
		if errors.Is(err, dialogue.ErrEmptyDialogue) {
			s.fail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.serverError(w, "start session", err)
		return
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := &ports.Session{Dialogue: doc, State: state, Warnings: warnings}
	if err := s.store.Save(r.Context(), sessionID, session); err != nil {
		s.serverError(w, "save session", err)
		return
	}

	s.logger.Info("session created", "session_id", sessionID, "sections", len(doc.Sections))
	s.respond(w, http.StatusCreated, SessionResponse{SessionID: sessionID, State: state, Warnings: warnings})
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	session, err := s.load(r.Context(), w, sessionID)
	if err != nil {
		return
	}
	s.respond(w, http.StatusOK, SessionResponse{SessionID: sessionID, State: session.State, Warnings: session.Warnings})
}

// StepSession handles POST /sessions/{id}/step: execute exactly one
// step and persist the advanced state.
func (s *Server) StepSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	session, err := s.load(r.Context(), w, sessionID)
	if err != nil {
		return
	}

	if session.State.Done() {
		s.fail(w, http.StatusConflict, fmt.Sprintf("session %s is %s", sessionID, session.State.Status))
		return
	}

	engine := player.NewEngine(session.Dialogue, player.WithEngineLogger(s.logger))
	tick, next, err := engine.Step(r.Context(), session.State)
	if err != nil {
		s.serverError(w, "step session", err)
		return
	}
	s.metrics.sessionSteps.WithLabelValues(string(tick.Kind)).Inc()

	session.State = next
	if err := s.store.Save(r.Context(), sessionID, session); err != nil {
		s.serverError(w, "save session", err)
		return
	}

	s.respond(w, http.StatusOK, StepResponse{
		SessionID: sessionID,
		Tick:      tick,
		State:     next,
		Done:      next.Done(),
	})
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), sessionID); err != nil {
		s.serverError(w, "delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.List(r.Context())
	if err != nil {
		s.serverError(w, "list sessions", err)
		return
	}
	s.respond(w, http.StatusOK, map[string][]string{"sessions": sessions})
}

func (s *Server) load(ctx context.Context, w http.ResponseWriter, sessionID string) (*ports.Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dialogue.ErrSessionNotFound) {
			s.fail(w, http.StatusNotFound, fmt.Sprintf("session %s not found", sessionID))
		} else {
			s.serverError(w, "load session", err)
		}
		return nil, err
	}
	return session, nil
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]string{"error": message})
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op+" failed", "error", err)
	s.fail(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", op, err))
}
