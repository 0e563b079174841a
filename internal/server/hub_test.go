package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func recvUpdate(t *testing.T, ch <-chan entity.StatusUpdate) entity.StatusUpdate {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(time.Second):
		t.Fatal("no update received")
		return entity.StatusUpdate{}
	}
}

func TestHubDeliversToSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe("A1")
	defer cancel1()
	ch2, cancel2 := h.Subscribe("A1")
	defer cancel2()

	h.Publish(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 30})

	require.Equal(t, 30, recvUpdate(t, ch1).Progress)
	require.Equal(t, 30, recvUpdate(t, ch2).Progress)
}

func TestHubScopedPerAudit(t *testing.T) {
	h := NewHub()
	chA, cancelA := h.Subscribe("A1")
	defer cancelA()
	chB, cancelB := h.Subscribe("B2")
	defer cancelB()

	h.Publish(entity.StatusUpdate{JobID: "B2", Status: constants.JobStatusProcessing, Progress: 10})

	require.Equal(t, "B2", recvUpdate(t, chB).JobID)
	select {
	case u := <-chA:
		t.Fatalf("subscriber of A1 received update for %s", u.JobID)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHubReplaysLastOnSubscribe(t *testing.T) {
	h := NewHub()
	h.Publish(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 60})

	ch, cancel := h.Subscribe("A1")
	defer cancel()
	require.Equal(t, 60, recvUpdate(t, ch).Progress)
}

func TestHubCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("A1")
	cancel()

	h.Publish(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusProcessing, Progress: 30})
	select {
	case <-ch:
		t.Fatal("cancelled subscriber received an update")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHubForget(t *testing.T) {
	h := NewHub()
	h.Publish(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusCompleted, Progress: 100})
	h.Forget("A1")

	ch, cancel := h.Subscribe("A1")
	defer cancel()
	select {
	case <-ch:
		t.Fatal("forgotten audit still replayed an update")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("A1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			h.Publish(entity.StatusUpdate{JobID: "A1", Status: constants.JobStatusProcessing, Progress: i})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
