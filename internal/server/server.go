// Package server exposes pkg/graph.Store over HTTP: ask, materialize,
// and validate endpoints. It is not a SPARQL endpoint, stdlib
// net/http with no router is enough for three routes, the same choice
// trigo/internal/server/server.go made for its own (larger) surface.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/knowgraph/semcore/pkg/graph"
)

var errMethodNotAllowed = errors.New("method not allowed")

// Server wires a graph.Store to a handful of JSON HTTP endpoints.
type Server struct {
	store   *graph.Store
	log     *zap.Logger
	mux     *http.ServeMux
	metrics *Metrics
}

// Option configures a Server at construction time.
type Option func(*Server)

// WithMetrics instruments every route with m (request counter + latency
// histogram). Omit to serve without metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// New builds a Server. log must not be nil; pass zap.NewNop() in tests.
func New(store *graph.Store, log *zap.Logger, opts ...Option) *Server {
	s := &Server{store: store, log: log, mux: http.NewServeMux()}
	for _, opt := range opts {
		opt(s)
	}
	s.register("/ask", s.handleAsk)
	s.register("/materialize", s.handleMaterialize)
	s.register("/validate", s.handleValidate)
	return s
}

func (s *Server) register(route string, h http.HandlerFunc) {
	if s.metrics != nil {
		h = s.metrics.Instrument(route, h)
	}
	s.mux.HandleFunc(route, h)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type askResponse struct {
	Matched bool `json:"matched"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	subj, pred, obj, ok := parseSPO(w, r)
	if !ok {
		return
	}
	matched, err := s.store.Ask(subj, pred, obj)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, askResponse{Matched: matched})
}

type materializeResponse struct {
	Subjects []uint32 `json:"subjects"`
}

func (s *Server) handleMaterialize(w http.ResponseWriter, r *http.Request) {
	pred, err := parseUint32(r.URL.Query().Get("predicate"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	obj, err := parseUint32OrWildcard(r.URL.Query().Get("object"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	subjects, err := s.store.MaterializeSubjects(pred, obj)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, materializeResponse{Subjects: subjects})
}

type validateRequest struct {
	Subject            uint32   `json:"subject"`
	TargetClass        uint32   `json:"target_class"`
	RequiredProperties []uint32 `json:"required_properties"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	results, err := s.store.ValidateShapeBatch([]graph.ShapeCheck{{
		Subject: req.Subject,
		Shape: graph.Shape{
			TargetClass:        req.TargetClass,
			RequiredProperties: req.RequiredProperties,
		},
	}})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, validateResponse{Valid: results[0]})
}

func parseSPO(w http.ResponseWriter, r *http.Request) (subj, pred, obj uint32, ok bool) {
	q := r.URL.Query()
	var err error
	if subj, err = parseUint32(q.Get("subject")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, 0, false
	}
	if pred, err = parseUint32(q.Get("predicate")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, 0, false
	}
	if obj, err = parseUint32OrWildcard(q.Get("object")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, 0, false
	}
	return subj, pred, obj, true
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseUint32OrWildcard(s string) (uint32, error) {
	if s == "" {
		return graph.WildcardID, nil
	}
	return parseUint32(s)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	http.Error(w, err.Error(), status)
}
