package history

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

type fakeBackend struct {
	mu      sync.Mutex
	lists   int
	fetches int
	listErr error
	fetchFn func(jobID string) (*entity.ResultBundle, error)
}

func (f *fakeBackend) Upload(context.Context, entity.Document) (entity.UploadReceipt, error) {
	return entity.UploadReceipt{}, errors.New("not implemented")
}

func (f *fakeBackend) Start(context.Context, string) error { return errors.New("not implemented") }

func (f *fakeBackend) PollStatus(context.Context, string) (entity.StatusUpdate, error) {
	return entity.StatusUpdate{}, errors.New("not implemented")
}

func (f *fakeBackend) WatchStatus(context.Context, string) (entity.StatusStream, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBackend) FetchResults(_ context.Context, jobID string) (*entity.ResultBundle, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	if f.fetchFn != nil {
		return f.fetchFn(jobID)
	}
	return &entity.ResultBundle{Summary: entity.Summary{Total: 3, Compliant: 2, Divergent: 1}}, nil
}

func (f *fakeBackend) ListHistory(_ context.Context, offset, limit int) ([]entity.JobSummary, error) {
	f.mu.Lock()
	f.lists++
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := make([]entity.JobSummary, 0, limit)
	for i := 0; i < limit; i++ {
		page = append(page, entity.JobSummary{
			JobID:     "job-" + string(rune('a'+offset+i)),
			Status:    constants.JobStatusCompleted,
			CreatedAt: time.Now(),
		})
	}
	return page, nil
}

func (f *fakeBackend) DownloadURL(jobID string) string {
	return "http://backend/audits/" + jobID + "/report"
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestListCachesPerPage(t *testing.T) {
	backend := &fakeBackend{}
	s := NewStore(backend, testLogger())

	first, err := s.List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	again, err := s.List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Equal(t, 1, backend.lists, "the same page must come from cache")

	_, err = s.List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, backend.lists, "a different page is a different cache entry")
}

func TestListErrorIsClassified(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("backend unreachable")}
	s := NewStore(backend, testLogger())

	_, err := s.List(context.Background(), 0, 10)
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindTransport))
}

func TestLoadSynthesizesCompletedView(t *testing.T) {
	backend := &fakeBackend{}
	s := NewStore(backend, testLogger())

	v, err := s.Load(context.Background(), "A1")
	require.NoError(t, err)
	require.Equal(t, "A1", v.JobID)
	require.Equal(t, constants.JobStatusCompleted, v.Status)
	require.Equal(t, 100, v.Progress)
	require.NotNil(t, v.Summary)
	require.Equal(t, 3, v.Summary.Total)
}

func TestLoadCachesPerJob(t *testing.T) {
	backend := &fakeBackend{}
	s := NewStore(backend, testLogger())

	_, err := s.Load(context.Background(), "A1")
	require.NoError(t, err)
	_, err = s.Load(context.Background(), "A1")
	require.NoError(t, err)
	require.Equal(t, 1, backend.fetches)

	_, err = s.Load(context.Background(), "A2")
	require.NoError(t, err)
	require.Equal(t, 2, backend.fetches)
}

func TestLoadFetchErrorIsClassified(t *testing.T) {
	backend := &fakeBackend{
		fetchFn: func(string) (*entity.ResultBundle, error) {
			return nil, errors.New("results purged")
		},
	}
	s := NewStore(backend, testLogger())

	_, err := s.Load(context.Background(), "A1")
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindResultsFetch))
	require.Equal(t, 1, backend.fetches, "a failed load must not be cached")

	_, err = s.Load(context.Background(), "A1")
	require.Error(t, err)
	require.Equal(t, 2, backend.fetches)
}

func TestInvalidateDropsCaches(t *testing.T) {
	backend := &fakeBackend{}
	s := NewStore(backend, testLogger())

	_, _ = s.List(context.Background(), 0, 2)
	_, _ = s.Load(context.Background(), "A1")
	s.Invalidate()

	_, _ = s.List(context.Background(), 0, 2)
	_, _ = s.Load(context.Background(), "A1")
	require.Equal(t, 2, backend.lists)
	require.Equal(t, 2, backend.fetches)
}

func TestReportURL(t *testing.T) {
	s := NewStore(&fakeBackend{}, testLogger())
	require.Equal(t, "http://backend/audits/A1/report", s.ReportURL("A1"))
}
