// Package client implements the backend contract over gRPC. It is the only
// package on the consumer side that knows the wire encoding.
package client

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	auditv1 "github.com/audittax/audittax/gen/proto/audit/v1"
	"github.com/audittax/audittax/internal/entity"
	"github.com/audittax/audittax/internal/utils"
)

// Backend talks to the audit server over gRPC and satisfies entity.Backend.
type Backend struct {
	conn   *grpc.ClientConn
	client auditv1.AuditServiceClient
	addr   string
	logger *slog.Logger
}

func New(addr string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, entity.NewTransportError("connecting to audit server", err)
	}
	return &Backend{
		conn:   conn,
		client: auditv1.NewAuditServiceClient(conn),
		addr:   addr,
		logger: logger,
	}, nil
}

func (b *Backend) Close() error {
	return b.conn.Close()
}

func (b *Backend) Upload(ctx context.Context, doc entity.Document) (entity.UploadReceipt, error) {
	resp, err := b.client.UploadDocument(ctx, &auditv1.UploadDocumentRequest{
		Filename: doc.Filename,
		Content:  doc.Content,
	})
	if err != nil {
		return entity.UploadReceipt{}, entity.NewUploadError("uploading document", err)
	}
	return entity.UploadReceipt{
		JobID:       resp.GetAuditId(),
		DocumentKey: resp.GetDocumentKey(),
		TotalItems:  int(resp.GetTotalItems()),
		Status:      resp.GetStatus(),
	}, nil
}

func (b *Backend) Start(ctx context.Context, jobID string) error {
	_, err := b.client.StartAudit(ctx, &auditv1.StartAuditRequest{AuditId: jobID})
	if err != nil {
		return entity.NewStartError("starting audit", err)
	}
	return nil
}

func (b *Backend) PollStatus(ctx context.Context, jobID string) (entity.StatusUpdate, error) {
	resp, err := b.client.GetAuditStatus(ctx, &auditv1.GetAuditStatusRequest{AuditId: jobID})
	if err != nil {
		return entity.StatusUpdate{}, entity.NewTransportError("querying audit status", err)
	}
	return utils.FromPBStatus(resp), nil
}

func (b *Backend) WatchStatus(ctx context.Context, jobID string) (entity.StatusStream, error) {
	ctx, cancel := context.WithCancel(ctx)
	stream, err := b.client.WatchAudit(ctx, &auditv1.WatchAuditRequest{AuditId: jobID})
	if err != nil {
		cancel()
		return nil, entity.NewTransportError("opening status stream", err)
	}
	return &watchStream{stream: stream, cancel: cancel}, nil
}

func (b *Backend) FetchResults(ctx context.Context, jobID string) (*entity.ResultBundle, error) {
	resp, err := b.client.GetAuditResults(ctx, &auditv1.GetAuditResultsRequest{AuditId: jobID})
	if err != nil {
		return nil, entity.NewResultsFetchError("fetching audit results", err)
	}
	return utils.FromPBResults(resp), nil
}

func (b *Backend) ListHistory(ctx context.Context, offset, limit int) ([]entity.JobSummary, error) {
	resp, err := b.client.ListAuditHistory(ctx, &auditv1.ListAuditHistoryRequest{
		Offset: int32(offset),
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, entity.NewTransportError("listing audit history", err)
	}
	out := make([]entity.JobSummary, 0, len(resp.GetAudits()))
	for _, a := range resp.GetAudits() {
		out = append(out, utils.FromPBSummaryEntry(a))
	}
	return out, nil
}

// DownloadReport fetches the rendered XLSX report for a completed audit.
func (b *Backend) DownloadReport(ctx context.Context, jobID string) (string, []byte, error) {
	resp, err := b.client.DownloadReport(ctx, &auditv1.DownloadReportRequest{AuditId: jobID})
	if err != nil {
		return "", nil, entity.NewResultsFetchError("downloading report", err)
	}
	return resp.GetFilename(), resp.GetContent(), nil
}

func (b *Backend) DownloadURL(jobID string) string {
	return fmt.Sprintf("grpc://%s/audit.v1.AuditService/DownloadReport/%s", b.addr, jobID)
}

// watchStream adapts the grpc client stream to the transport-neutral
// status stream contract.
type watchStream struct {
	stream grpc.ServerStreamingClient[auditv1.AuditStatus]
	cancel context.CancelFunc
}

func (w *watchStream) Recv() (entity.StatusUpdate, error) {
	msg, err := w.stream.Recv()
	if err != nil {
		return entity.StatusUpdate{}, err
	}
	return utils.FromPBStatus(msg), nil
}

func (w *watchStream) Close() error {
	w.cancel()
	return nil
}
