// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/cfnext/process-service/internal/config"
)

// RootHandler serves the service info endpoint.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests. The mux routes every unmatched path
// here, so anything other than exactly "/" is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Service: config.ServiceName,
		Version: config.Version,
		Docs:    config.DocsPath,
	})
}
