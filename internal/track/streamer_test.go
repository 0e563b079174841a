package track

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func TestStreamerDeliversAndClosesOnTerminal(t *testing.T) {
	stream := newFakeStream()
	backend := &fakeBackend{
		watchFn: func(string) (entity.StatusStream, error) { return stream, nil },
	}

	sink := &updateSink{}
	s := NewStreamer(backend, testLogger())
	sub, err := s.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)
	defer sub.Cancel()

	stream.updates <- entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30}
	stream.updates <- entity.StatusUpdate{Status: constants.JobStatusCompleted, Progress: 100}

	require.Eventually(t, func() bool {
		return sink.updateCount() == 2 && stream.isClosed()
	}, time.Second, 2*time.Millisecond)
	require.Equal(t, constants.JobStatusCompleted, sink.lastUpdate().Status)
	require.Equal(t, 0, sink.errCount())
}

func TestStreamerActivationFailureIsClassified(t *testing.T) {
	backend := &fakeBackend{
		watchFn: func(string) (entity.StatusStream, error) {
			return nil, errors.New("stream refused")
		},
	}

	s := NewStreamer(backend, testLogger())
	sub, err := s.Activate(context.Background(), "A1", func(entity.StatusUpdate) {}, func(error) {})
	require.Nil(t, sub)
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindTransport))
}

func TestStreamerSurfacesRecvFailure(t *testing.T) {
	stream := newFakeStream()
	backend := &fakeBackend{
		watchFn: func(string) (entity.StatusStream, error) { return stream, nil },
	}

	sink := &updateSink{}
	s := NewStreamer(backend, testLogger())
	sub, err := s.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)
	defer sub.Cancel()

	stream.updates <- entity.StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30}
	stream.errs <- errors.New("connection reset")

	require.Eventually(t, func() bool {
		return sink.errCount() == 1
	}, time.Second, 2*time.Millisecond)
	require.True(t, entity.IsKind(sink.firstErr(), entity.KindTransport))
	require.Equal(t, 1, sink.updateCount())
}

func TestStreamerCancelClosesStream(t *testing.T) {
	stream := newFakeStream()
	backend := &fakeBackend{
		watchFn: func(string) (entity.StatusStream, error) { return stream, nil },
	}

	sink := &updateSink{}
	s := NewStreamer(backend, testLogger())
	sub, err := s.Activate(context.Background(), "A1", sink.deliver, sink.fail)
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel() // idempotent

	require.Eventually(t, stream.isClosed, time.Second, 2*time.Millisecond)
	// Cancellation is not a transport failure.
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 0, sink.errCount())
	require.Equal(t, 0, sink.updateCount())
}
