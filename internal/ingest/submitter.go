package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
)

// Submitter uploads discovered documents and starts their audits.
type Submitter struct {
	backend entity.Backend
	logger  *slog.Logger
}

func NewSubmitter(backend entity.Backend, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{backend: backend, logger: logger}
}

// Run consumes discovered paths until ctx ends or the channel closes.
// Failures are logged and skipped; one bad file must not stop the intake.
func (s *Submitter) Run(ctx context.Context, paths <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			s.submit(ctx, path)
		}
	}
}

const submitTimeout = 2 * time.Minute

func (s *Submitter) submit(ctx context.Context, path string) {
	ctx, cancel := common.WithTimeout(ctx, submitTimeout)
	defer cancel()

	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("ingest.read_failed", "path", path, "error", err)
		return
	}

	receipt, err := s.backend.Upload(ctx, entity.Document{
		Filename: filepath.Base(path),
		Content:  content,
	})
	if err != nil {
		s.logger.Error("ingest.upload_failed", "path", path, "error", err)
		return
	}

	if err := s.backend.Start(ctx, receipt.JobID); err != nil {
		s.logger.Error("ingest.start_failed", "path", path, "audit_id", receipt.JobID, "error", err)
		return
	}
	s.logger.Info("ingest.submitted", "path", path, "audit_id", receipt.JobID,
		"document_key", receipt.DocumentKey, "total_items", receipt.TotalItems)
}
