package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/aretw0/clifford/pkg/ports"
	"github.com/aretw0/clifford/pkg/tableau"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxQubits bounds the register size accepted by /sample. openapi.yaml
// carries the same maximum.
const MaxQubits = 512

//go:embed openapi.yaml
var specYAML []byte

// Spec parses the embedded OpenAPI document that describes the API.
func Spec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// Engine defines the part of clifford.Sampler the server needs.
type Engine interface {
	Sample(ctx context.Context, n int) (*domain.Run, error)
	Canonicalize(ctx context.Context, rows []string) (*domain.Run, error)
	Figure5(ctx context.Context) (*domain.Run, error)
	SweepPair(ctx context.Context, a, b string) (*domain.Run, error)
}

// Server serves the engine and the run store over HTTP.
type Server struct {
	Engine   Engine
	Store    ports.RunStore
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

type Option func(*Server)

// WithStore exposes stored runs under /runs.
func WithStore(store ports.RunStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine. Requests for the
// operations in openapi.yaml are validated against it before routing.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine:   engine,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.Health)
	r.Get("/info", s.Info)
	r.Get("/sample", s.Sample)
	r.Get("/figure5", s.Figure5)
	r.Post("/canonicalize", s.Canonicalize)
	r.Post("/sweep", s.Sweep)
	r.Route("/runs", func(r chi.Router) {
		r.Get("/", s.ListRuns)
		r.Get("/{id}", s.GetRun)
		r.Delete("/{id}", s.DeleteRun)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	doc, err := Spec()
	if err != nil {
		panic(err)
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		panic(fmt.Errorf("failed to build openapi router: %w", err))
	}

	return enableCORS(validateRequests(router, r))
}

// validateRequests checks parameters and bodies of documented operations.
// Paths the document does not describe pass through unchecked.
func validateRequests(router routers.Router, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := router.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles GET /info.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":    "clifford",
		"version": strings.TrimSpace(clifford.Version),
		"store":   s.Store != nil,
	})
}

// Sample handles GET /sample?n=<qubits>&format=<json|text|qasm>.
func (s *Server) Sample(w http.ResponseWriter, r *http.Request) {
	var n int
	if err := runtime.BindQueryParameter("form", true, true, "n", r.URL.Query(), &n); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter n: %s", err), http.StatusBadRequest)
		return
	}
	if n > MaxQubits {
		http.Error(w, fmt.Sprintf("n must be at most %d", MaxQubits), http.StatusBadRequest)
		return
	}

	run, err := s.Engine.Sample(r.Context(), n)
	s.respond(w, r, run, err)
}

// Figure5 handles GET /figure5.
func (s *Server) Figure5(w http.ResponseWriter, r *http.Request) {
	run, err := s.Engine.Figure5(r.Context())
	s.respond(w, r, run, err)
}

// CanonicalizeRequest is the body of POST /canonicalize.
type CanonicalizeRequest struct {
	Rows []string `json:"rows"`
}

// Canonicalize handles POST /canonicalize.
func (s *Server) Canonicalize(w http.ResponseWriter, r *http.Request) {
	var body CanonicalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	run, err := s.Engine.Canonicalize(r.Context(), body.Rows)
	s.respond(w, r, run, err)
}

// SweepRequest is the body of POST /sweep.
type SweepRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Sweep handles POST /sweep.
func (s *Server) Sweep(w http.ResponseWriter, r *http.Request) {
	var body SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	run, err := s.Engine.SweepPair(r.Context(), body.A, body.B)
	s.respond(w, r, run, err)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := bindRunID(w, r)
	if !ok {
		return
	}
	run, err := s.Store.Load(r.Context(), id)
	s.respond(w, r, run, err)
}

// DeleteRun handles DELETE /runs/{id}.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := bindRunID(w, r)
	if !ok {
		return
	}
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -- Helpers --

func bindRunID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter id: %s", err), http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.Store == nil {
		http.Error(w, "run storage is disabled", http.StatusNotImplemented)
		return false
	}
	return true
}

// respond writes run in the format requested by ?format=, JSON by default.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, run *domain.Run, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}

	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter format: %s", err), http.StatusBadRequest)
		return
	}

	switch format {
	case "", "json":
		s.writeJSON(w, http.StatusOK, run)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := run.Circuit.WriteText(w); err != nil {
			s.Logger.Error("text response write failed", "error", err)
		}
	case "qasm":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, run.Circuit.QASM(run.Qubits))
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, pauli.ErrEmpty),
		errors.Is(err, pauli.ErrInvalidSign),
		errors.Is(err, pauli.ErrInvalidPauli),
		errors.Is(err, tableau.ErrShape),
		errors.Is(err, tableau.ErrCommutingPair),
		errors.Is(err, tableau.ErrQubits),
		errors.Is(err, clifford.ErrPairShape):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
