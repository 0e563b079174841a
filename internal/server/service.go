package server

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/gen/ent"
	auditv1 "github.com/audittax/audittax/gen/proto/audit/v1"
	"github.com/audittax/audittax/internal/auditor"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
	"github.com/audittax/audittax/internal/export"
	"github.com/audittax/audittax/internal/repository"
	"github.com/audittax/audittax/internal/utils"
)

// AuditService implements the audit lifecycle API.
type AuditService struct {
	auditv1.UnimplementedAuditServiceServer
	repo   repository.AuditRepository
	runner *Runner
	hub    *Hub
	logger *zap.Logger

	// runCtx governs in-flight audit runs; request contexts end with the
	// RPC but the runs must not.
	runCtx context.Context
}

func NewAuditService(runCtx context.Context, repo repository.AuditRepository, runner *Runner, hub *Hub, logger *zap.Logger) *AuditService {
	return &AuditService{
		repo:   repo,
		runner: runner,
		hub:    hub,
		logger: logger,
		runCtx: runCtx,
	}
}

func (s *AuditService) UploadDocument(ctx context.Context, req *auditv1.UploadDocumentRequest) (*auditv1.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "document content is empty")
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "extension %q not allowed, expected xml", ext)
	}

	documentKey, totalItems, err := auditor.ParseDocument(req.GetContent())
	if err != nil {
		s.logger.Warn("document rejected", zap.String("filename", filename), zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, "document is not a valid NF-e XML")
	}

	a, err := s.repo.Create(ctx, filename, documentKey, string(req.GetContent()), totalItems)
	if err != nil {
		s.logger.Error("upload persist failed", zap.String("filename", filename), zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to register document")
	}

	s.logger.Info("document uploaded",
		zap.String("audit_id", a.ID.String()),
		zap.String("document_key", documentKey),
		zap.Int("total_items", totalItems))
	return &auditv1.UploadDocumentResponse{
		AuditId:     a.ID.String(),
		DocumentKey: documentKey,
		TotalItems:  int32(totalItems),
		Status:      a.Status,
	}, nil
}

func (s *AuditService) StartAudit(ctx context.Context, req *auditv1.StartAuditRequest) (*auditv1.StartAuditResponse, error) {
	auditID, err := parseAuditID(req.GetAuditId())
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Get(ctx, auditID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	if a.Status != string(constants.JobStatusReady) {
		return nil, status.Errorf(codes.FailedPrecondition, "audit is %s, only ready audits can start", a.Status)
	}

	doc := entity.Document{Filename: a.Filename, Content: []byte(a.DocumentXML)}
	go s.runner.Run(s.runCtx, auditID, doc)

	s.logger.Info("audit started", zap.String("audit_id", auditID.String()))
	return &auditv1.StartAuditResponse{
		AuditId: auditID.String(),
		Status:  string(constants.JobStatusProcessing),
	}, nil
}

func (s *AuditService) GetAuditStatus(ctx context.Context, req *auditv1.GetAuditStatusRequest) (*auditv1.AuditStatus, error) {
	auditID, err := parseAuditID(req.GetAuditId())
	if err != nil {
		return nil, err
	}
	a, err := s.repo.Get(ctx, auditID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return statusFromRow(a), nil
}

// WatchAudit streams status changes until the audit reaches a terminal
// state or the watcher disconnects. The current status is sent first.
func (s *AuditService) WatchAudit(req *auditv1.WatchAuditRequest, stream auditv1.AuditService_WatchAuditServer) error {
	auditID, err := parseAuditID(req.GetAuditId())
	if err != nil {
		return err
	}
	ctx := stream.Context()

	a, err := s.repo.Get(ctx, auditID)
	if err != nil {
		return notFoundOrInternal(err)
	}

	updates, cancel := s.hub.Subscribe(auditID.String())
	defer cancel()

	current := statusFromRow(a)
	if err := stream.Send(current); err != nil {
		return err
	}
	if constants.JobStatus(current.GetStatus()).IsTerminal() {
		return nil
	}

	lastProgress := int(current.GetProgress())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u := <-updates:
			// The replayed retained update may predate the row we already
			// sent; skip stale ones.
			if u.Progress < lastProgress && !u.Status.IsTerminal() {
				continue
			}
			lastProgress = u.Progress
			if err := stream.Send(utils.ToPBStatus(u)); err != nil {
				return err
			}
			if u.Status.IsTerminal() {
				return nil
			}
		}
	}
}

func (s *AuditService) GetAuditResults(ctx context.Context, req *auditv1.GetAuditResultsRequest) (*auditv1.GetAuditResultsResponse, error) {
	auditID, err := parseAuditID(req.GetAuditId())
	if err != nil {
		return nil, err
	}
	bundle, err := s.repo.Results(ctx, auditID)
	if err != nil {
		s.logger.Warn("results fetch failed", zap.String("audit_id", auditID.String()), zap.Error(err))
		return nil, resultsError(err)
	}
	return utils.ToPBResults(bundle), nil
}

func (s *AuditService) ListAuditHistory(ctx context.Context, req *auditv1.ListAuditHistoryRequest) (*auditv1.ListAuditHistoryResponse, error) {
	offset := int(req.GetOffset())
	limit := int(req.GetLimit())
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("history list failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to list audits")
	}

	out := make([]*auditv1.AuditSummary, 0, len(rows))
	for _, a := range rows {
		entry := &auditv1.AuditSummary{
			AuditId:     a.ID.String(),
			DocumentKey: a.DocumentKey,
			Status:      a.Status,
			CreatedAt:   timestamppb.New(a.CreatedAt),
		}
		if a.CompletedAt != nil {
			entry.CompletedAt = timestamppb.New(*a.CompletedAt)
		}
		if len(a.ResultSummary) > 0 {
			var sum entity.Summary
			if err := json.Unmarshal(a.ResultSummary, &sum); err == nil {
				entry.Summary = utils.ToPBSummary(sum)
			}
		}
		out = append(out, entry)
	}
	return &auditv1.ListAuditHistoryResponse{Audits: out, Total: int32(total)}, nil
}

// DownloadReport serves the pre-rendered XLSX report, rendering on demand
// when the completion-time render was lost.
func (s *AuditService) DownloadReport(ctx context.Context, req *auditv1.DownloadReportRequest) (*auditv1.DownloadReportResponse, error) {
	auditID, err := parseAuditID(req.GetAuditId())
	if err != nil {
		return nil, err
	}
	a, err := s.repo.Get(ctx, auditID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	if a.Status != string(constants.JobStatusCompleted) {
		return nil, status.Error(codes.FailedPrecondition, "audit has no report yet")
	}

	if a.ReportPath != nil && *a.ReportPath != "" {
		content, rerr := os.ReadFile(*a.ReportPath)
		if rerr == nil {
			return &auditv1.DownloadReportResponse{
				Filename: filepath.Base(*a.ReportPath),
				Content:  content,
			}, nil
		}
		s.logger.Warn("stored report unreadable, re-rendering",
			zap.String("audit_id", auditID.String()), zap.Error(rerr))
	}

	bundle, err := s.repo.Results(ctx, auditID)
	if err != nil {
		return nil, resultsError(err)
	}
	content, err := export.Render(auditID.String(), bundle)
	if err != nil {
		s.logger.Error("report render failed", zap.String("audit_id", auditID.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to render report")
	}
	return &auditv1.DownloadReportResponse{
		Filename: export.Filename(auditID.String()),
		Content:  content,
	}, nil
}

func statusFromRow(a *ent.Audit) *auditv1.AuditStatus {
	st := &auditv1.AuditStatus{
		AuditId:  a.ID.String(),
		Status:   a.Status,
		Progress: int32(a.Progress),
	}
	if a.CurrentStep != nil {
		st.CurrentStep = *a.CurrentStep
	}
	if a.ErrorMessage != nil {
		st.Error = *a.ErrorMessage
	}
	if a.Status == string(constants.JobStatusCompleted) {
		st.Progress = 100
	}
	return st
}

func parseAuditID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.UUID{}, status.Error(codes.InvalidArgument, "audit_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, status.Error(codes.InvalidArgument, "audit_id must be a UUID")
	}
	return id, nil
}

func notFoundOrInternal(err error) error {
	if errorCode(err) == common.ErrCodeNotFound {
		return status.Error(codes.NotFound, "audit not found")
	}
	return status.Error(codes.Internal, "internal error")
}

func resultsError(err error) error {
	switch errorCode(err) {
	case common.ErrCodeNotFound:
		return status.Error(codes.NotFound, "audit not found")
	case common.ErrCodeFailedPrecondition:
		return status.Error(codes.FailedPrecondition, "audit has no results")
	default:
		return status.Error(codes.Internal, "failed to load results")
	}
}

func errorCode(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
