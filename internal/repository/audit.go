package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/gen/ent"
	entaudit "github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
)

type AuditRepository interface {
	Create(ctx context.Context, filename, documentKey, documentXML string, totalItems int) (*ent.Audit, error)
	MarkProcessing(ctx context.Context, auditID uuid.UUID) error
	UpdateProgress(ctx context.Context, auditID uuid.UUID, progress int, step string) error
	Complete(ctx context.Context, auditID uuid.UUID, bundle *entity.ResultBundle, reportPath string) error
	Fail(ctx context.Context, auditID uuid.UUID, message string) error
	Get(ctx context.Context, auditID uuid.UUID) (*ent.Audit, error)
	Results(ctx context.Context, auditID uuid.UUID) (*entity.ResultBundle, error)
	List(ctx context.Context, offset, limit int) ([]*ent.Audit, int, error)
}

type auditRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAuditRepository(entc *ent.Client, log *slog.Logger) AuditRepository {
	return &auditRepo{ent: entc, log: log}
}

func (r *auditRepo) Create(ctx context.Context, filename, documentKey, documentXML string, totalItems int) (*ent.Audit, error) {
	a, err := r.ent.Audit.
		Create().
		SetFilename(filename).
		SetDocumentKey(documentKey).
		SetDocumentXML(documentXML).
		SetTotalItems(totalItems).
		SetStatus(string(constants.JobStatusReady)).
		Save(ctx)
	if err != nil {
		r.log.Error("audit create failed", "filename", filename, "err", err)
		return nil, common.NewAppError(common.ErrCodeDatabase, "failed to create audit", err)
	}
	r.log.Info("audit created", "audit_id", a.ID, "document_key", documentKey, "total_items", totalItems)
	return a, nil
}

func (r *auditRepo) MarkProcessing(ctx context.Context, auditID uuid.UUID) error {
	_, err := r.ent.Audit.
		UpdateOneID(auditID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetProgress(0).
		Save(ctx)
	if err != nil {
		r.log.Error("audit mark processing failed", "audit_id", auditID, "err", err)
		return common.NewAppError(common.ErrCodeDatabase, "failed to update audit", err)
	}
	return nil
}

func (r *auditRepo) UpdateProgress(ctx context.Context, auditID uuid.UUID, progress int, step string) error {
	_, err := r.ent.Audit.
		UpdateOneID(auditID).
		SetProgress(progress).
		SetCurrentStep(step).
		Save(ctx)
	if err != nil {
		r.log.Error("audit progress update failed", "audit_id", auditID, "err", err)
		return common.NewAppError(common.ErrCodeDatabase, "failed to update audit", err)
	}
	return nil
}

// Complete persists the outcome and all item rows in one transaction.
func (r *auditRepo) Complete(ctx context.Context, auditID uuid.UUID, bundle *entity.ResultBundle, reportPath string) error {
	summary, err := json.Marshal(bundle.Summary)
	if err != nil {
		return common.NewAppError(common.ErrCodeInternal, "failed to encode summary", err)
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.NewAppError(common.ErrCodeDatabase, "failed to open transaction", err)
	}

	upd := tx.Audit.
		UpdateOneID(auditID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgress(100).
		SetResultSummary(summary).
		SetCompletedAt(time.Now())
	if reportPath != "" {
		upd = upd.SetReportPath(reportPath)
	}
	if bundle.InvoiceHeader != nil {
		header, herr := json.Marshal(bundle.InvoiceHeader)
		if herr != nil {
			_ = tx.Rollback()
			return common.NewAppError(common.ErrCodeInternal, "failed to encode invoice header", herr)
		}
		upd = upd.SetInvoiceHeader(header)
	}
	if len(bundle.ConsistencyErrors) > 0 {
		ce, cerr := json.Marshal(bundle.ConsistencyErrors)
		if cerr != nil {
			_ = tx.Rollback()
			return common.NewAppError(common.ErrCodeInternal, "failed to encode consistency errors", cerr)
		}
		upd = upd.SetConsistencyErrors(ce)
	}
	if _, err = upd.Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("audit complete failed", "audit_id", auditID, "err", err)
		return common.NewAppError(common.ErrCodeDatabase, "failed to complete audit", err)
	}

	builders := make([]*ent.AuditItemCreate, 0, len(bundle.Items))
	for _, it := range bundle.Items {
		b := tx.AuditItem.
			Create().
			SetAuditID(auditID).
			SetItemIndex(it.Index).
			SetProductCode(it.ProductCode).
			SetProductName(it.ProductName).
			SetStatus(string(it.Status)).
			SetIssues(it.Issues)
		if it.Detail != nil {
			detail, derr := json.Marshal(it.Detail)
			if derr != nil {
				_ = tx.Rollback()
				return common.NewAppError(common.ErrCodeInternal, "failed to encode item detail", derr)
			}
			b = b.SetDetail(detail)
		}
		builders = append(builders, b)
	}
	if _, err = tx.AuditItem.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("audit items persist failed", "audit_id", auditID, "err", err)
		return common.NewAppError(common.ErrCodeDatabase, "failed to persist audit items", err)
	}

	if err = tx.Commit(); err != nil {
		return common.NewAppError(common.ErrCodeDatabase, "failed to commit audit completion", err)
	}
	r.log.Info("audit completed", "audit_id", auditID,
		"total", bundle.Summary.Total, "divergent", bundle.Summary.Divergent)
	return nil
}

func (r *auditRepo) Fail(ctx context.Context, auditID uuid.UUID, message string) error {
	_, err := r.ent.Audit.
		UpdateOneID(auditID).
		SetStatus(string(constants.JobStatusError)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("audit fail update failed", "audit_id", auditID, "err", err)
		return common.NewAppError(common.ErrCodeDatabase, "failed to update audit", err)
	}
	r.log.Warn("audit failed", "audit_id", auditID, "error", message)
	return nil
}

func (r *auditRepo) Get(ctx context.Context, auditID uuid.UUID) (*ent.Audit, error) {
	a, err := r.ent.Audit.Get(ctx, auditID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError(common.ErrCodeNotFound, "audit not found", err)
		}
		return nil, common.NewAppError(common.ErrCodeDatabase, "failed to load audit", err)
	}
	return a, nil
}

// Results reassembles the result bundle of a completed audit from the
// persisted rows.
func (r *auditRepo) Results(ctx context.Context, auditID uuid.UUID) (*entity.ResultBundle, error) {
	a, err := r.Get(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if a.Status != string(constants.JobStatusCompleted) {
		return nil, common.NewAppError(common.ErrCodeFailedPrecondition, "audit has no results", nil)
	}

	bundle := &entity.ResultBundle{}
	if len(a.ResultSummary) > 0 {
		if err := json.Unmarshal(a.ResultSummary, &bundle.Summary); err != nil {
			return nil, common.NewAppError(common.ErrCodeInternal, "corrupt result summary", err)
		}
	}
	if len(a.InvoiceHeader) > 0 {
		bundle.InvoiceHeader = &entity.InvoiceHeader{}
		if err := json.Unmarshal(a.InvoiceHeader, bundle.InvoiceHeader); err != nil {
			return nil, common.NewAppError(common.ErrCodeInternal, "corrupt invoice header", err)
		}
	}
	if len(a.ConsistencyErrors) > 0 {
		if err := json.Unmarshal(a.ConsistencyErrors, &bundle.ConsistencyErrors); err != nil {
			return nil, common.NewAppError(common.ErrCodeInternal, "corrupt consistency errors", err)
		}
	}

	rows, err := a.QueryItems().All(ctx)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeDatabase, "failed to load audit items", err)
	}
	bundle.Items = make([]entity.Item, 0, len(rows))
	for _, row := range rows {
		it := entity.Item{
			Index:       row.ItemIndex,
			ProductCode: row.ProductCode,
			ProductName: row.ProductName,
			Status:      constants.ItemStatus(row.Status),
			Issues:      row.Issues,
		}
		if len(row.Detail) > 0 {
			it.Detail = &entity.ItemDetail{}
			if err := json.Unmarshal(row.Detail, it.Detail); err != nil {
				return nil, common.NewAppError(common.ErrCodeInternal, "corrupt item detail", err)
			}
		}
		bundle.Items = append(bundle.Items, it)
	}
	sortItems(bundle.Items)
	return bundle, nil
}

func (r *auditRepo) List(ctx context.Context, offset, limit int) ([]*ent.Audit, int, error) {
	q := r.ent.Audit.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, common.NewAppError(common.ErrCodeDatabase, "failed to count audits", err)
	}
	rows, err := q.
		Order(ent.Desc(entaudit.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, common.NewAppError(common.ErrCodeDatabase, "failed to list audits", err)
	}
	return rows, total, nil
}

func sortItems(items []entity.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })
}
