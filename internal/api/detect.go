package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/veritext/veritext/pkg/detect"
)

// detectRequest is the JSON body for POST /detect.
type detectRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if err := detect.ValidateInput(text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.detector.Detect(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "detection failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"algorithm": "rule-based-enhanced",
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "AI Text Detection API",
		"version": Version,
		"endpoints": map[string]string{
			"/detect": "POST - Detect if text is AI-generated",
			"/health": "GET - Check API health",
		},
	})
}
