// Package history is the client-side read model over past audits. It
// caches listing pages and per-job views so repeated navigation does not
// refetch, and rebuilds detail views through the same combination path the
// live tracker uses.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
	"github.com/audittax/audittax/internal/view"
)

// Store reads audit history from the backend with caching.
type Store struct {
	backend entity.Backend
	logger  *slog.Logger

	mu    sync.Mutex
	pages map[string][]entity.JobSummary
	views map[string]entity.View
}

func NewStore(backend entity.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		pages:   make(map[string][]entity.JobSummary),
		views:   make(map[string]entity.View),
	}
}

// List returns one page of the audit history, newest first. Pages are
// cached by offset and limit until Invalidate.
func (s *Store) List(ctx context.Context, offset, limit int) ([]entity.JobSummary, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}
	key := pageKey(offset, limit)

	s.mu.Lock()
	if page, ok := s.pages[key]; ok {
		s.mu.Unlock()
		return page, nil
	}
	s.mu.Unlock()

	page, err := s.backend.ListHistory(ctx, offset, limit)
	if err != nil {
		return nil, entity.Classify(err, entity.KindTransport)
	}

	s.mu.Lock()
	s.pages[key] = page
	s.mu.Unlock()
	s.logger.Debug("history.page.loaded", "offset", offset, "limit", limit, "entries", len(page))
	return page, nil
}

// Load rebuilds the full view of one past audit. The job already finished,
// so the lifecycle part is synthesized as completed and only the result
// bundle is fetched. The view is cached per job id.
func (s *Store) Load(ctx context.Context, jobID string) (entity.View, error) {
	s.mu.Lock()
	if v, ok := s.views[jobID]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	bundle, err := s.backend.FetchResults(ctx, jobID)
	if err != nil {
		return entity.View{}, entity.Classify(err, entity.KindResultsFetch)
	}

	job := entity.JobRecord{
		ID:       jobID,
		Status:   constants.JobStatusCompleted,
		Progress: 100,
	}
	v := view.Combine(job, bundle)

	s.mu.Lock()
	s.views[jobID] = v
	s.mu.Unlock()
	return v, nil
}

// ReportURL returns the download location of the XLSX report for a job.
func (s *Store) ReportURL(jobID string) string {
	return s.backend.DownloadURL(jobID)
}

// Invalidate drops every cached page and view. Call it after a new audit
// completes so the listing picks it up.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.pages = make(map[string][]entity.JobSummary)
	s.views = make(map[string]entity.View)
	s.mu.Unlock()
}

func pageKey(offset, limit int) string {
	return fmt.Sprintf("%d:%d", offset, limit)
}
