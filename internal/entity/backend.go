package entity

import "context"

// Document is a fiscal document submitted for auditing.
type Document struct {
	Filename string
	Content  []byte
}

// UploadReceipt is the server's acknowledgement of a successful upload.
type UploadReceipt struct {
	JobID       string
	DocumentKey string
	TotalItems  int
	Status      string
}

// StatusStream is one persistent push connection scoped to a job id.
// Recv blocks until the next status message or a transport error; Close
// tears the connection down and is safe to call more than once.
type StatusStream interface {
	Recv() (StatusUpdate, error)
	Close() error
}

// Backend is the remote collaborator that owns the audit computation.
// The tracking core only consumes this contract; the wire encoding is the
// implementation's concern.
type Backend interface {
	Upload(ctx context.Context, doc Document) (UploadReceipt, error)
	Start(ctx context.Context, jobID string) error
	PollStatus(ctx context.Context, jobID string) (StatusUpdate, error)
	WatchStatus(ctx context.Context, jobID string) (StatusStream, error)
	FetchResults(ctx context.Context, jobID string) (*ResultBundle, error)
	ListHistory(ctx context.Context, offset, limit int) ([]JobSummary, error)
	DownloadURL(jobID string) string
}
