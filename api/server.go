// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never performs calculation or compliance
// logic itself.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"foster-budget/adapters/archive"
	"foster-budget/core/report"
	"foster-budget/core/validation"
	"foster-budget/internal/errors"
)

// Server is the API server
type Server struct {
	mux       *http.ServeMux
	validator *validation.Validator
	reporter  *report.Reporter
	reports   archive.Archive
	version   string
	logger    *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, validator *validation.Validator, reporter *report.Reporter, reports archive.Archive, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mux:       http.NewServeMux(),
		validator: validator,
		reporter:  reporter,
		reports:   reports,
		version:   version,
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /validate", s.handleValidate)
	s.mux.HandleFunc("POST /report", s.handleReport)

	// Supporting endpoints
	s.mux.HandleFunc("GET /reports/{id}", s.handleGetReport)
	s.mux.HandleFunc("GET /rule-table", s.handleRuleTable)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleValidate handles POST /validate
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.PlacementID == "" {
		s.writeError(w, "VALIDATION_ERROR", "placement_id is required", http.StatusBadRequest)
		return
	}

	// Data problems come back as a failed result, never as an error
	result := s.validator.ValidatePlacement(r.Context(), req.PlacementID)
	s.writeJSON(w, result, http.StatusOK)
}

// handleReport handles POST /report
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.PlacementIDs) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "placement_ids must not be empty", http.StatusBadRequest)
		return
	}

	generated := s.reporter.Run(r.Context(), req.PlacementIDs)

	if req.Save && s.reports != nil {
		if _, err := s.reports.Save(r.Context(), generated); err != nil {
			s.logger.Error("failed to archive report",
				zap.String("report_id", generated.ID), zap.Error(err))
		}
	}

	s.writeJSON(w, generated, http.StatusOK)
}

// handleGetReport handles GET /reports/{id}
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		s.writeError(w, "NOT_CONFIGURED", "report archive is not configured", http.StatusNotFound)
		return
	}

	stored, err := s.reports.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.IsNotFound(err) {
			s.writeError(w, "NOT_FOUND", err.Error(), http.StatusNotFound)
			return
		}
		s.writeError(w, "ARCHIVE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, stored, http.StatusOK)
}

// handleRuleTable handles GET /rule-table
func (s *Server) handleRuleTable(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.validator.Table(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	table := s.validator.Table()
	s.writeJSON(w, VersionResponse{
		Version:          s.version,
		RuleTableVersion: table.Version,
		FiscalYear:       table.FiscalYear,
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
