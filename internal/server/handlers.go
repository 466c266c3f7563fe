package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/disposable-platform/phishguard/apimodels"
	"github.com/disposable-platform/phishguard/internal/analyzer"
	"github.com/disposable-platform/phishguard/internal/classifier"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Phishing detection service is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analyzer.Health())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	defer r.Body.Close()

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeAnalyzeError maps pipeline failures onto the response contract:
// validation 400, model not loaded 503, anything else a generic 500
// carrying the failure's description.
func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzer.ErrMissingURL):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, classifier.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "Model not loaded")
	default:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, apimodels.ErrorResponse{Detail: detail})
}
