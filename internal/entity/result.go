package entity

import (
	"time"

	"github.com/audittax/audittax/constants"
)

// Summary holds the audit outcome counts. Total = Compliant + Divergent.
type Summary struct {
	Total     int `json:"total"`
	Compliant int `json:"compliant"`
	Divergent int `json:"divergent"`
}

// InvoiceHeader is document-level metadata, pass-through for the core.
type InvoiceHeader struct {
	DocumentKey string  `json:"document_key"`
	Issuer      string  `json:"issuer,omitempty"`
	IssuedAt    string  `json:"issued_at,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
	TotalTax    float64 `json:"total_tax,omitempty"`
}

// ConsistencyError is a document-level structural mismatch (totals that do
// not add up across the document), pass-through for the core.
type ConsistencyError struct {
	Field         string `json:"field"`
	DocumentValue string `json:"document_value"`
	ComputedValue string `json:"computed_value"`
	Message       string `json:"message"`
}

// ResultBundle is the detailed result of a completed audit, fetched once
// per job. Treated as immutable after construction.
type ResultBundle struct {
	Summary           Summary            `json:"summary"`
	Items             []Item             `json:"items"`
	InvoiceHeader     *InvoiceHeader     `json:"invoice_header,omitempty"`
	ConsistencyErrors []ConsistencyError `json:"consistency_errors,omitempty"`
}

// View is the combined, presentation-ready value merging lifecycle status
// and the Result Bundle. Summary and Items are absent in the degraded case
// (the job completed but the enrichment fetch failed).
type View struct {
	JobID             string              `json:"job_id"`
	Status            constants.JobStatus `json:"status"`
	Progress          int                 `json:"progress"`
	Step              string              `json:"current_step,omitempty"`
	ErrorMessage      string              `json:"error,omitempty"`
	Summary           *Summary            `json:"summary,omitempty"`
	Items             []Item              `json:"items,omitempty"`
	InvoiceHeader     *InvoiceHeader      `json:"invoice_header,omitempty"`
	ConsistencyErrors []ConsistencyError  `json:"consistency_errors,omitempty"`
}

// JobSummary is one entry of the audit history listing.
type JobSummary struct {
	JobID       string              `json:"job_id"`
	DocumentKey string              `json:"document_key"`
	Status      constants.JobStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Summary     *Summary            `json:"summary,omitempty"`
}
