package track

import (
	"context"
	"sync"

	"github.com/audittax/audittax/internal/entity"
)

// fakeBackend scripts every Backend call through function fields and counts
// invocations so tests can assert call cardinality.
type fakeBackend struct {
	mu sync.Mutex

	uploadFn func(doc entity.Document) (entity.UploadReceipt, error)
	startFn  func(jobID string) error
	pollFn   func(jobID string) (entity.StatusUpdate, error)
	watchFn  func(jobID string) (entity.StatusStream, error)
	fetchFn  func(jobID string) (*entity.ResultBundle, error)

	uploads int
	starts  int
	polls   int
	fetches int
}

func (f *fakeBackend) Upload(_ context.Context, doc entity.Document) (entity.UploadReceipt, error) {
	f.mu.Lock()
	f.uploads++
	f.mu.Unlock()
	if f.uploadFn != nil {
		return f.uploadFn(doc)
	}
	return entity.UploadReceipt{JobID: "A1", DocumentKey: "doc-key", Status: "ready"}, nil
}

func (f *fakeBackend) Start(_ context.Context, jobID string) error {
	f.mu.Lock()
	f.starts++
	f.mu.Unlock()
	if f.startFn != nil {
		return f.startFn(jobID)
	}
	return nil
}

func (f *fakeBackend) PollStatus(_ context.Context, jobID string) (entity.StatusUpdate, error) {
	f.mu.Lock()
	f.polls++
	f.mu.Unlock()
	if f.pollFn != nil {
		return f.pollFn(jobID)
	}
	return entity.StatusUpdate{JobID: jobID}, nil
}

func (f *fakeBackend) WatchStatus(_ context.Context, jobID string) (entity.StatusStream, error) {
	if f.watchFn != nil {
		return f.watchFn(jobID)
	}
	return newFakeStream(), nil
}

func (f *fakeBackend) FetchResults(_ context.Context, jobID string) (*entity.ResultBundle, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	if f.fetchFn != nil {
		return f.fetchFn(jobID)
	}
	return &entity.ResultBundle{Summary: entity.Summary{Total: 1, Compliant: 1}}, nil
}

func (f *fakeBackend) ListHistory(_ context.Context, _, _ int) ([]entity.JobSummary, error) {
	return nil, nil
}

func (f *fakeBackend) DownloadURL(jobID string) string {
	return "http://backend/audits/" + jobID + "/report"
}

func (f *fakeBackend) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeBackend) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

// fakeStream feeds scripted updates over a channel. Sending an error makes
// the next Recv surface it; closing the updates channel yields io.EOF-like
// blocking, so tests close via Close.
type fakeStream struct {
	updates chan entity.StatusUpdate
	errs    chan error
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		updates: make(chan entity.StatusUpdate, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
}

func (s *fakeStream) Recv() (entity.StatusUpdate, error) {
	// Drain queued updates before surfacing an error so scripted sequences
	// arrive in the order the test wrote them.
	select {
	case u := <-s.updates:
		return u, nil
	default:
	}
	select {
	case u := <-s.updates:
		return u, nil
	case err := <-s.errs:
		return entity.StatusUpdate{}, err
	case <-s.done:
		return entity.StatusUpdate{}, context.Canceled
	}
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	return nil
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// fakeAdapter hands the registered callbacks to the test so updates and
// failures can be driven synchronously.
type fakeAdapter struct {
	mu          sync.Mutex
	activations int
	activateErr error
	deliver     func(entity.StatusUpdate)
	fail        func(error)
	cancelled   bool
}

func (a *fakeAdapter) Activate(_ context.Context, _ string, deliver func(entity.StatusUpdate), fail func(error)) (*Subscription, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activations++
	if a.activateErr != nil {
		return nil, a.activateErr
	}
	a.deliver = deliver
	a.fail = fail
	return NewSubscription(func() {
		a.mu.Lock()
		a.cancelled = true
		a.mu.Unlock()
	}), nil
}

func (a *fakeAdapter) push(u entity.StatusUpdate) {
	a.mu.Lock()
	deliver := a.deliver
	a.mu.Unlock()
	deliver(u)
}

func (a *fakeAdapter) reportFailure(err error) {
	a.mu.Lock()
	fail := a.fail
	a.mu.Unlock()
	fail(err)
}

func (a *fakeAdapter) activationCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activations
}

func (a *fakeAdapter) wasCancelled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancelled
}
