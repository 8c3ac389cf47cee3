// Package api implements the veritext REST API: the detection endpoint
// plus liveness and capability descriptors.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/veritext/veritext/pkg/detect"
)

// Version is reported by the service descriptor.
const Version = "2.0.0"

// Handler is the top-level API handler for the detection service.
type Handler struct {
	detector *detect.Detector
}

// NewHandler creates a new API handler. A nil detector gets the default
// rule table.
func NewHandler(detector *detect.Detector) *Handler {
	if detector == nil {
		detector = detect.New()
	}
	return &Handler{detector: detector}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /detect", h.handleDetect)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /{$}", h.handleRoot)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
