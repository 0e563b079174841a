// Package auditor integrates the external audit engine that compares a
// fiscal document against the reference tax dataset.
package auditor

import (
	"context"

	"github.com/audittax/audittax/internal/entity"
)

// Engine runs the fiscal comparison for one document and returns the full
// result bundle. Implementations own transport and response validation.
type Engine interface {
	Audit(ctx context.Context, doc entity.Document) (*entity.ResultBundle, error)
}
