package auditor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
)

// HTTPEngine talks to the audit engine over its JSON API.
type HTTPEngine struct {
	url    string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

func NewHTTPEngine(url, apiKey string, client *http.Client, logger *slog.Logger) *HTTPEngine {
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPEngine{url: url, apiKey: apiKey, client: client, logger: logger}
}

type auditRequest struct {
	Filename string `json:"filename"`
	Document string `json:"document"`
}

// Audit submits the document and validates the engine's response against
// the result schema before decoding it.
func (e *HTTPEngine) Audit(ctx context.Context, doc entity.Document) (*entity.ResultBundle, error) {
	headers := map[string]string{}
	if e.apiKey != "" {
		headers["Authorization"] = "Bearer " + e.apiKey
	}
	raw, status, err := sendJSON(ctx, e.client, e.url, auditRequest{
		Filename: doc.Filename,
		Document: string(doc.Content),
	}, headers, e.logger)
	if err != nil {
		return nil, entity.NewJobError(fmt.Sprintf("audit engine failed (status %d): %v", status, err))
	}

	if err := ValidateResult(raw); err != nil {
		e.logger.Error("auditor.result.invalid", "error", err)
		return nil, entity.NewJobError("audit engine returned a malformed result: " + err.Error())
	}

	bundle := &entity.ResultBundle{}
	if err := json.Unmarshal(raw, bundle); err != nil {
		return nil, entity.NewJobError("decoding audit result: " + err.Error())
	}
	return bundle, nil
}

func sendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		logger.Error("auditor.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		logger.Error("auditor.http.build_request_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Info("auditor.http.request", "req_id", reqID, "url", url,
		"job_id", common.JobIDFromContext(ctx), "content_length", len(bs))

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("auditor.http.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			logger.Warn("auditor.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	logger.Info("auditor.http.response", "req_id", reqID, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
