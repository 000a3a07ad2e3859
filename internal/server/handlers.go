package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/sprintlab/internal/models"
	"github.com/claude/sprintlab/internal/sprint"
)

// maxBodyBytes caps JSON request bodies; 50 times fit easily.
const maxBodyBytes = 64 << 10

// AnalyzeRequest is the JSON body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Times []float64 `json:"times"`
}

func (s *Server) handleAnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	analysis, err := s.analyze(r, req.Times)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Benchmarks())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

// analyze validates times at the input boundary and runs one computation pass.
func (s *Server) analyze(r *http.Request, times []float64) (*sprint.Analysis, error) {
	session, err := models.NewSession(times, s.limits.SessionLimits())
	if err != nil {
		return nil, err
	}
	analysis, err := sprint.Analyze(session)
	if err != nil {
		s.log.Error("analyze error", "error", err, "request_id", requestIDFromContext(r))
		return nil, err
	}
	s.log.Debug("analysis computed",
		"analysis_id", analysis.ID,
		"sets", session.Len(),
		"request_id", requestIDFromContext(r),
	)
	for _, warn := range analysis.Metrics.Warnings {
		s.log.Warn("analysis warning", "analysis_id", analysis.ID, "warning", warn)
	}
	return analysis, nil
}

func statusFor(err error) int {
	var ve *models.ValidationError
	if errors.As(err, &ve) || errors.Is(err, sprint.ErrEmptySession) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
