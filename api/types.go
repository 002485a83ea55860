// Package api - Request and response types
package api

// ValidateRequest is the body of POST /validate
type ValidateRequest struct {
	// PlacementID is the placement to validate
	PlacementID string `json:"placement_id"`
}

// ReportRequest is the body of POST /report
type ReportRequest struct {
	// PlacementIDs is the batch to validate, in order
	PlacementIDs []string `json:"placement_ids"`

	// Save archives the generated report
	Save bool `json:"save,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is the human-readable error
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the body of GET /version
type VersionResponse struct {
	Version          string `json:"version"`
	RuleTableVersion string `json:"rule_table_version"`
	FiscalYear       int    `json:"fiscal_year"`
}
