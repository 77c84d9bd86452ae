// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cfnext/process-service/internal/domain/transform"
	"github.com/go-playground/validator/v10"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Process transforms data and merges options over computed metadata.
	Process(ctx context.Context, data string, options map[string]any) transform.Result
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	rootHandler    *RootHandler
	processHandler *ProcessHandler
}

// NewServer creates a new API server with all handlers. The shared secret is
// passed in explicitly so handlers never read ambient process state.
func NewServer(deps Dependencies, secret string, maxBodyBytes int64) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		rootHandler:    NewRootHandler(),
		processHandler: NewProcessHandler(deps, newSecretVerifier(secret), maxBodyBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/process", MetricsMiddleware(s.processHandler.HandleProcess, "process"))
	mux.Handle("/metrics", MetricsHandler())
	// The root pattern matches every otherwise-unrouted path; the handler
	// 404s anything that is not exactly "/".
	mux.HandleFunc("/", MetricsMiddleware(s.rootHandler.HandleRoot, "root"))
}

// processRequest mirrors the JSON schema for POST /process. Data is decoded
// through a pointer so a missing field is distinguished from an empty string,
// which is valid input.
type processRequest struct {
	Data    *string        `json:"data" validate:"required"`
	Options map[string]any `json:"options"`
}

// processResponse is the success body for POST /process.
type processResponse struct {
	Result      string         `json:"result"`
	ProcessedAt string         `json:"processed_at"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// healthResponse is the body for GET /health.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// rootResponse is the body for GET /.
type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// errorResponse matches the error shape callers of the original service
// already parse.
type errorResponse struct {
	Detail string `json:"detail"`
}

var validate = validator.New()

func (r *processRequest) validateSchema() error {
	if err := validate.Struct(r); err != nil {
		return NewKind("api.process", ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
