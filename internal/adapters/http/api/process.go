// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cfnext/process-service/pkg/metrics"
)

// statusUnprocessableEntity mirrors the schema-failure status of the
// original service.
const statusUnprocessableEntity = http.StatusUnprocessableEntity

// ProcessHandler handles the authenticated processing endpoint.
type ProcessHandler struct {
	deps         Dependencies
	auth         secretVerifier
	maxBodyBytes int64
	now          func() time.Time
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(deps Dependencies, auth secretVerifier, maxBodyBytes int64) *ProcessHandler {
	return &ProcessHandler{
		deps:         deps,
		auth:         auth,
		maxBodyBytes: maxBodyBytes,
		now:          time.Now,
	}
}

// HandleProcess handles POST /process requests.
//
// Authentication runs before the body is touched: a request without a valid
// secret performs no processing and emits no processing log line.
func (h *ProcessHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if !h.auth.verify(r) {
		metrics.RecordAuthFailure()
		writeError(w, http.StatusUnauthorized, authFailureDetail)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req processRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		metrics.RecordValidationFailure()
		writeError(w, statusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if err := req.validateSchema(); err != nil {
		metrics.RecordValidationFailure()
		writeError(w, statusUnprocessableEntity, "data is required and must be a string")
		return
	}

	res := h.deps.Process(r.Context(), *req.Data, req.Options)

	writeJSON(w, http.StatusOK, processResponse{
		Result:      res.Output,
		ProcessedAt: h.now().UTC().Format(time.RFC3339Nano),
		Metadata:    res.Metadata,
	})
}
