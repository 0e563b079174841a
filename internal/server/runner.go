package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/auditor"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
)

// JobStore is the slice of the audit repository the runner needs.
type JobStore interface {
	MarkProcessing(ctx context.Context, auditID uuid.UUID) error
	UpdateProgress(ctx context.Context, auditID uuid.UUID, progress int, step string) error
	Complete(ctx context.Context, auditID uuid.UUID, bundle *entity.ResultBundle, reportPath string) error
	Fail(ctx context.Context, auditID uuid.UUID, message string) error
}

// ReportWriter renders the downloadable report for a completed audit and
// returns where it was stored.
type ReportWriter interface {
	Write(auditID string, bundle *entity.ResultBundle) (string, error)
}

// Runner executes one audit end to end: it drives the engine, persists
// every state change and publishes progress to the hub.
type Runner struct {
	store   JobStore
	engine  auditor.Engine
	hub     *Hub
	reports ReportWriter
	logger  *zap.Logger
}

func NewRunner(store JobStore, engine auditor.Engine, hub *Hub, reports ReportWriter, logger *zap.Logger) *Runner {
	return &Runner{store: store, engine: engine, hub: hub, reports: reports, logger: logger}
}

// Run blocks until the audit reaches a terminal state. Callers run it on
// its own goroutine; ctx should outlive the originating request.
func (r *Runner) Run(ctx context.Context, auditID uuid.UUID, doc entity.Document) {
	id := auditID.String()
	ctx = common.WithJobID(ctx, id)

	if err := r.store.MarkProcessing(ctx, auditID); err != nil {
		r.logger.Error("audit start persist failed", zap.String("audit_id", id), zap.Error(err))
		r.fail(ctx, auditID, "internal error starting audit")
		return
	}
	r.progress(ctx, auditID, 10, "Iniciando auditoria...")

	r.progress(ctx, auditID, 30, "Processando itens...")
	bundle, err := r.engine.Audit(ctx, doc)
	if err != nil {
		r.logger.Warn("audit engine failed", zap.String("audit_id", id), zap.Error(err))
		r.fail(ctx, auditID, entity.Classify(err, entity.KindJob).Message)
		return
	}

	var reportPath string
	if r.reports != nil {
		reportPath, err = r.reports.Write(id, bundle)
		if err != nil {
			// The audit outcome stands; only the pre-rendered report is
			// lost and DownloadReport will render on demand.
			r.logger.Warn("report render failed", zap.String("audit_id", id), zap.Error(err))
			reportPath = ""
		}
	}

	if err := r.store.Complete(ctx, auditID, bundle, reportPath); err != nil {
		r.logger.Error("audit completion persist failed", zap.String("audit_id", id), zap.Error(err))
		r.fail(ctx, auditID, "internal error persisting results")
		return
	}

	r.hub.Publish(entity.StatusUpdate{
		JobID:     id,
		Status:    constants.JobStatusCompleted,
		Progress:  100,
		Step:      "Auditoria concluída",
		Timestamp: time.Now(),
	})
	r.logger.Info("audit completed",
		zap.String("audit_id", id),
		zap.Int("total", bundle.Summary.Total),
		zap.Int("divergent", bundle.Summary.Divergent))
}

func (r *Runner) progress(ctx context.Context, auditID uuid.UUID, progress int, step string) {
	if err := r.store.UpdateProgress(ctx, auditID, progress, step); err != nil {
		r.logger.Warn("progress persist failed", zap.String("audit_id", auditID.String()), zap.Error(err))
	}
	r.hub.Publish(entity.StatusUpdate{
		JobID:     auditID.String(),
		Status:    constants.JobStatusProcessing,
		Progress:  progress,
		Step:      step,
		Timestamp: time.Now(),
	})
}

func (r *Runner) fail(ctx context.Context, auditID uuid.UUID, message string) {
	if err := r.store.Fail(ctx, auditID, message); err != nil {
		r.logger.Error("failure persist failed", zap.String("audit_id", auditID.String()), zap.Error(err))
	}
	r.hub.Publish(entity.StatusUpdate{
		JobID:     auditID.String(),
		Status:    constants.JobStatusError,
		Error:     message,
		Timestamp: time.Now(),
	})
}
