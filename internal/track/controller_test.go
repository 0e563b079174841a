package track

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestController(backend *fakeBackend, push, poll Adapter, preferPush bool) *Controller {
	return newController(backend, push, poll, preferPush, testLogger())
}

func submit(t *testing.T, c *Controller) {
	t.Helper()
	err := c.Submit(context.Background(), entity.Document{Filename: "nota.xml", Content: []byte("<nfe/>")})
	require.NoError(t, err)
}

func TestSubmitActivatesPushAndTracks(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	poll := &fakeAdapter{}
	c := newTestController(backend, push, poll, true)
	defer c.Close()

	submit(t, c)

	require.Equal(t, 1, push.activationCount())
	require.Equal(t, 0, poll.activationCount())

	s := c.Snapshot()
	require.Equal(t, PhaseProcessing, s.Phase)
	require.Equal(t, "A1", s.Job.ID)
	require.Equal(t, constants.JobStatusProcessing, s.Job.Status)

	push.push(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 30, Step: "Processando itens..."})
	s = c.Snapshot()
	require.Equal(t, 30, s.Job.Progress)
	require.Equal(t, "Processando itens...", s.Job.Step)
}

func TestProgressNeverRegresses(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 60, Step: "comparing"})
	push.push(entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 10, Step: "reading"})

	s := c.Snapshot()
	require.Equal(t, 60, s.Job.Progress, "a stale lower progress must be ignored")
	require.Equal(t, "reading", s.Job.Step, "step still follows the latest update")
}

func TestCompletedForcesFullProgress(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 70})

	s := c.Snapshot()
	require.Equal(t, PhaseCompleted, s.Phase)
	require.Equal(t, 100, s.Job.Progress)
}

func TestExactlyOneResultsFetch(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	done := entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100, Step: "done"}
	push.push(done)
	push.push(done)
	push.push(done)

	require.Eventually(t, func() bool {
		return c.Snapshot().View != nil
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, 1, backend.fetchCount())

	v := c.Snapshot().View
	require.Equal(t, constants.JobStatusCompleted, v.Status)
	require.NotNil(t, v.Summary)
}

func TestDegradedViewWhenFetchFails(t *testing.T) {
	backend := &fakeBackend{
		fetchFn: func(string) (*entity.ResultBundle, error) {
			return nil, entity.NewResultsFetchError("results not found", nil)
		},
	}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100})

	require.Eventually(t, func() bool {
		return c.Snapshot().View != nil
	}, time.Second, 5*time.Millisecond)

	s := c.Snapshot()
	require.Equal(t, PhaseCompleted, s.Phase, "a failed enrichment fetch must not fail the job")
	require.Equal(t, constants.JobStatusCompleted, s.View.Status)
	require.Nil(t, s.View.Summary)
	require.Empty(t, s.View.Items)
}

func TestServerReportedErrorSkipsFetch(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusError, Error: "bad checksum"})

	s := c.Snapshot()
	require.Equal(t, PhaseError, s.Phase)
	require.Equal(t, constants.JobStatusError, s.Job.Status)
	require.Equal(t, "bad checksum", s.Job.ErrorMessage)
	require.Equal(t, 0, backend.fetchCount())
	require.NotNil(t, s.View)
	require.Equal(t, "bad checksum", s.View.ErrorMessage)
}

func TestUploadFailureStaysIdle(t *testing.T) {
	backend := &fakeBackend{
		uploadFn: func(entity.Document) (entity.UploadReceipt, error) {
			return entity.UploadReceipt{}, errors.New("extension not allowed")
		},
	}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()

	err := c.Submit(context.Background(), entity.Document{Filename: "nota.pdf"})
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindUpload))

	s := c.Snapshot()
	require.Equal(t, PhaseIdle, s.Phase)
	require.Nil(t, s.Job)
	require.Equal(t, "extension not allowed", s.LocalError)
	require.Equal(t, 0, push.activationCount())
}

func TestStartFailureStaysIdle(t *testing.T) {
	backend := &fakeBackend{
		startFn: func(string) error { return errors.New("engine unavailable") },
	}
	c := newTestController(backend, &fakeAdapter{}, &fakeAdapter{}, true)
	defer c.Close()

	err := c.Submit(context.Background(), entity.Document{Filename: "nota.xml"})
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindStart))
	require.Equal(t, PhaseIdle, c.Snapshot().Phase)
}

func TestSubmitRejectedWhileTracking(t *testing.T) {
	backend := &fakeBackend{}
	c := newTestController(backend, &fakeAdapter{}, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	err := c.Submit(context.Background(), entity.Document{Filename: "outra.xml"})
	require.Error(t, err)
	require.Equal(t, 1, backend.uploads)
}

func TestPushActivationFailureFallsBackToPolling(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{activateErr: entity.NewTransportError("stream refused", nil)}
	poll := &fakeAdapter{}
	c := newTestController(backend, push, poll, true)
	defer c.Close()

	submit(t, c)

	require.Equal(t, 1, push.activationCount())
	require.Equal(t, 1, poll.activationCount())
	require.Equal(t, PhaseProcessing, c.Snapshot().Phase)

	poll.push(entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30})
	require.Equal(t, 30, c.Snapshot().Job.Progress)
}

func TestPushMidStreamFailureFallsBackToPolling(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	poll := &fakeAdapter{}
	c := newTestController(backend, push, poll, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30})
	push.reportFailure(entity.NewTransportError("connection reset", nil))

	require.Equal(t, 1, poll.activationCount())
	s := c.Snapshot()
	require.Equal(t, PhaseProcessing, s.Phase)
	require.Equal(t, 30, s.Job.Progress, "accumulated progress survives the transport switch")
}

func TestTransportExhaustionFailsTracking(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{activateErr: entity.NewTransportError("stream refused", nil)}
	poll := &fakeAdapter{}
	c := newTestController(backend, push, poll, true)
	defer c.Close()
	submit(t, c)

	poll.reportFailure(entity.NewTransportError("backend unreachable", nil))

	s := c.Snapshot()
	require.Equal(t, PhaseError, s.Phase)
	require.Equal(t, constants.JobStatusError, s.Job.Status)
	require.Contains(t, s.Job.ErrorMessage, "status tracking lost")
	require.Equal(t, 0, backend.fetchCount())
}

func TestResetDiscardsJobAndIgnoresLateUpdates(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30})
	c.Reset()

	s := c.Snapshot()
	require.Equal(t, PhaseIdle, s.Phase)
	require.Nil(t, s.Job)
	require.True(t, push.wasCancelled())

	// A straggler from the cancelled subscription must not resurrect state.
	push.push(entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100})
	s = c.Snapshot()
	require.Equal(t, PhaseIdle, s.Phase)
	require.Nil(t, s.Job)
	require.Equal(t, 0, backend.fetchCount())
}

func TestResetAfterCompletionAllowsResubmit(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()
	submit(t, c)

	push.push(entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100})
	require.Eventually(t, func() bool {
		return c.Snapshot().View != nil
	}, time.Second, 5*time.Millisecond)

	c.Reset()
	submit(t, c)
	require.Equal(t, 2, backend.uploads)
	require.Equal(t, PhaseProcessing, c.Snapshot().Phase)
}

func TestNotifyObservesEveryTransition(t *testing.T) {
	backend := &fakeBackend{}
	push := &fakeAdapter{}
	c := newTestController(backend, push, &fakeAdapter{}, true)
	defer c.Close()

	phases := make(chan Phase, 32)
	c.SetNotify(func(s Snapshot) { phases <- s.Phase })

	submit(t, c)
	push.push(entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100})

	seen := map[Phase]bool{}
	timeout := time.After(time.Second)
	for !seen[PhaseCompleted] {
		select {
		case p := <-phases:
			seen[p] = true
		case <-timeout:
			t.Fatal("never observed the completed phase")
		}
	}
	require.True(t, seen[PhaseUploading])
	require.True(t, seen[PhaseProcessing])
}

func TestPollingEndToEnd(t *testing.T) {
	script := []entity.StatusUpdate{
		{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 10, Step: "reading"},
		{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 60, Step: "comparing"},
		{JobID: "A1", Status: constants.JobStatusCompleted, Progress: 100, Step: "done"},
	}
	step := 0
	backend := &fakeBackend{}
	backend.pollFn = func(jobID string) (entity.StatusUpdate, error) {
		u := script[step]
		if step < len(script)-1 {
			step++
		}
		return u, nil
	}

	poller := NewPoller(backend, 5*time.Millisecond, 5, testLogger())
	c := newController(backend, &fakeAdapter{}, poller, false, testLogger())
	defer c.Close()

	submit(t, c)

	require.Eventually(t, func() bool {
		s := c.Snapshot()
		return s.Phase == PhaseCompleted && s.View != nil
	}, 2*time.Second, 5*time.Millisecond)

	s := c.Snapshot()
	require.Equal(t, 100, s.Job.Progress)
	require.Equal(t, "done", s.Job.Step)
	require.Equal(t, 1, backend.fetchCount())
	require.NotNil(t, s.View.Summary)
}
