// Package view builds presentation-ready projections from job records and
// result bundles. Everything here is pure; the same inputs always produce
// the same view, whether the job is live or loaded from history.
package view

import "github.com/audittax/audittax/internal/entity"

// Combine merges a job record with its optional result bundle into a
// unified view. A nil bundle yields a degraded, lifecycle-only view.
func Combine(job entity.JobRecord, bundle *entity.ResultBundle) entity.View {
	v := entity.View{
		JobID:        job.ID,
		Status:       job.Status,
		Progress:     job.Progress,
		Step:         job.Step,
		ErrorMessage: job.ErrorMessage,
	}
	if bundle == nil {
		return v
	}
	summary := bundle.Summary
	v.Summary = &summary
	v.Items = bundle.Items
	v.InvoiceHeader = bundle.InvoiceHeader
	v.ConsistencyErrors = bundle.ConsistencyErrors
	return v
}
