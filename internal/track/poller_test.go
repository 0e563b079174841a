package track

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

type updateSink struct {
	mu      sync.Mutex
	updates []entity.StatusUpdate
	errs    []error
}

func (s *updateSink) deliver(u entity.StatusUpdate) {
	s.mu.Lock()
	s.updates = append(s.updates, u)
	s.mu.Unlock()
}

func (s *updateSink) fail(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *updateSink) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

func (s *updateSink) errCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errs)
}

func (s *updateSink) firstErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[0]
}

func (s *updateSink) lastUpdate() entity.StatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates[len(s.updates)-1]
}

func TestPollerDeliversUntilTerminal(t *testing.T) {
	script := []entity.StatusUpdate{
		{Status: constants.JobStatusProcessing, Progress: 10, Step: "reading"},
		{Status: constants.JobStatusProcessing, Progress: 60, Step: "comparing"},
		{Status: constants.JobStatusCompleted, Progress: 100, Step: "done"},
	}
	var mu sync.Mutex
	step := 0
	backend := &fakeBackend{}
	backend.pollFn = func(string) (entity.StatusUpdate, error) {
		mu.Lock()
		defer mu.Unlock()
		u := script[step]
		if step < len(script)-1 {
			step++
		}
		return u, nil
	}

	sink := &updateSink{}
	p := NewPoller(backend, 2*time.Millisecond, 5, testLogger())
	sub, err := p.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)
	defer sub.Cancel()

	require.Eventually(t, func() bool {
		return sink.updateCount() == 3
	}, time.Second, 2*time.Millisecond)
	require.Equal(t, constants.JobStatusCompleted, sink.lastUpdate().Status)

	// The loop stops on the terminal status; no further polls are issued.
	settled := backend.pollCount()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, backend.pollCount())
	require.Equal(t, 0, sink.errCount())
}

func TestPollerToleratesIsolatedFailures(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	backend := &fakeBackend{}
	backend.pollFn = func(string) (entity.StatusUpdate, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls%2 == 1 {
			return entity.StatusUpdate{}, errors.New("timeout")
		}
		return entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: calls}, nil
	}

	sink := &updateSink{}
	p := NewPoller(backend, 2*time.Millisecond, 3, testLogger())
	sub, err := p.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)
	defer sub.Cancel()

	// Failures alternate with successes and never reach the bound.
	require.Eventually(t, func() bool {
		return sink.updateCount() >= 4
	}, time.Second, 2*time.Millisecond)
	require.Equal(t, 0, sink.errCount())
}

func TestPollerFailsAfterConsecutiveErrors(t *testing.T) {
	backend := &fakeBackend{}
	backend.pollFn = func(string) (entity.StatusUpdate, error) {
		return entity.StatusUpdate{}, errors.New("backend unreachable")
	}

	sink := &updateSink{}
	p := NewPoller(backend, 2*time.Millisecond, 3, testLogger())
	sub, err := p.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)
	defer sub.Cancel()

	require.Eventually(t, func() bool {
		return sink.errCount() == 1
	}, time.Second, 2*time.Millisecond)
	require.True(t, entity.IsKind(sink.firstErr(), entity.KindTransport))
	require.Equal(t, 0, sink.updateCount())

	// Reporting is one-shot: the loop exited.
	settled := backend.pollCount()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, backend.pollCount())
}

func TestPollerCancelStopsDelivery(t *testing.T) {
	backend := &fakeBackend{}
	backend.pollFn = func(string) (entity.StatusUpdate, error) {
		return entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 10}, nil
	}

	sink := &updateSink{}
	p := NewPoller(backend, 2*time.Millisecond, 5, testLogger())
	sub, err := p.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sink.updateCount() >= 1
	}, time.Second, 2*time.Millisecond)

	sub.Cancel()
	sub.Cancel() // idempotent

	time.Sleep(10 * time.Millisecond)
	settled := sink.updateCount()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, sink.updateCount())
	require.Equal(t, 0, sink.errCount())
}
