package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

type storeCall struct {
	op       string
	progress int
	step     string
	message  string
}

type fakeStore struct {
	mu           sync.Mutex
	calls        []storeCall
	completeErr  error
	markProcErr  error
	lastBundle   *entity.ResultBundle
	lastReportAt string
}

func (f *fakeStore) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.record(storeCall{op: "mark_processing"})
	return f.markProcErr
}

func (f *fakeStore) UpdateProgress(_ context.Context, _ uuid.UUID, progress int, step string) error {
	f.record(storeCall{op: "progress", progress: progress, step: step})
	return nil
}

func (f *fakeStore) Complete(_ context.Context, _ uuid.UUID, bundle *entity.ResultBundle, reportPath string) error {
	f.mu.Lock()
	f.lastBundle = bundle
	f.lastReportAt = reportPath
	f.mu.Unlock()
	f.record(storeCall{op: "complete"})
	return f.completeErr
}

func (f *fakeStore) Fail(_ context.Context, _ uuid.UUID, message string) error {
	f.record(storeCall{op: "fail", message: message})
	return nil
}

func (f *fakeStore) record(c storeCall) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeStore) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

type fakeEngine struct {
	bundle *entity.ResultBundle
	err    error
}

func (e *fakeEngine) Audit(context.Context, entity.Document) (*entity.ResultBundle, error) {
	return e.bundle, e.err
}

type fakeReports struct {
	path string
	err  error
}

func (r *fakeReports) Write(string, *entity.ResultBundle) (string, error) {
	return r.path, r.err
}

func collectUpdates(h *Hub, jobID string) func() []entity.StatusUpdate {
	ch, cancel := h.Subscribe(jobID)
	var mu sync.Mutex
	var got []entity.StatusUpdate
	done := make(chan struct{})
	go func() {
		for {
			select {
			case u := <-ch:
				mu.Lock()
				got = append(got, u)
				mu.Unlock()
				if u.Status.IsTerminal() {
					close(done)
					return
				}
			case <-time.After(time.Second):
				close(done)
				return
			}
		}
	}()
	return func() []entity.StatusUpdate {
		<-done
		cancel()
		mu.Lock()
		defer mu.Unlock()
		return got
	}
}

func TestRunnerHappyPath(t *testing.T) {
	auditID := uuid.New()
	store := &fakeStore{}
	engine := &fakeEngine{bundle: &entity.ResultBundle{Summary: entity.Summary{Total: 1, Compliant: 1}}}
	hub := NewHub()
	reports := &fakeReports{path: "/reports/audit.xlsx"}
	updates := collectUpdates(hub, auditID.String())

	r := NewRunner(store, engine, hub, reports, zap.NewNop())
	r.Run(context.Background(), auditID, entity.Document{Filename: "nota.xml"})

	require.Equal(t, []string{"mark_processing", "progress", "progress", "complete"}, store.ops())
	require.Equal(t, "/reports/audit.xlsx", store.lastReportAt)

	got := updates()
	require.NotEmpty(t, got)
	var progresses []int
	for _, u := range got {
		progresses = append(progresses, u.Progress)
		require.Equal(t, auditID.String(), u.JobID)
	}
	// Progress only climbs, ending at the terminal 100.
	for i := 1; i < len(progresses); i++ {
		require.GreaterOrEqual(t, progresses[i], progresses[i-1])
	}
	last := got[len(got)-1]
	require.Equal(t, constants.JobStatusCompleted, last.Status)
	require.Equal(t, 100, last.Progress)
}

func TestRunnerEngineFailure(t *testing.T) {
	auditID := uuid.New()
	store := &fakeStore{}
	engine := &fakeEngine{err: entity.NewJobError("reference dataset unavailable")}
	hub := NewHub()
	updates := collectUpdates(hub, auditID.String())

	r := NewRunner(store, engine, hub, nil, zap.NewNop())
	r.Run(context.Background(), auditID, entity.Document{Filename: "nota.xml"})

	ops := store.ops()
	require.Equal(t, "fail", ops[len(ops)-1])

	got := updates()
	last := got[len(got)-1]
	require.Equal(t, constants.JobStatusError, last.Status)
	require.Equal(t, "reference dataset unavailable", last.Error)
}

func TestRunnerReportFailureDoesNotFailAudit(t *testing.T) {
	auditID := uuid.New()
	store := &fakeStore{}
	engine := &fakeEngine{bundle: &entity.ResultBundle{Summary: entity.Summary{Total: 1, Compliant: 1}}}
	hub := NewHub()
	reports := &fakeReports{err: entity.NewResultsFetchError("disk full", nil)}
	updates := collectUpdates(hub, auditID.String())

	r := NewRunner(store, engine, hub, reports, zap.NewNop())
	r.Run(context.Background(), auditID, entity.Document{Filename: "nota.xml"})

	ops := store.ops()
	require.Equal(t, "complete", ops[len(ops)-1])
	require.Empty(t, store.lastReportAt)

	got := updates()
	require.Equal(t, constants.JobStatusCompleted, got[len(got)-1].Status)
}

func TestRunnerPersistFailureReportsError(t *testing.T) {
	auditID := uuid.New()
	store := &fakeStore{completeErr: entity.NewJobError("db gone")}
	engine := &fakeEngine{bundle: &entity.ResultBundle{}}
	hub := NewHub()
	updates := collectUpdates(hub, auditID.String())

	r := NewRunner(store, engine, hub, nil, zap.NewNop())
	r.Run(context.Background(), auditID, entity.Document{Filename: "nota.xml"})

	got := updates()
	require.Equal(t, constants.JobStatusError, got[len(got)-1].Status)
}
