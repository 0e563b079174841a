package server

import (
	"sync"

	"github.com/audittax/audittax/internal/entity"
)

const subscriberBuffer = 16

// Hub fans status updates out to the watchers of each audit. Subscribers
// get the last known update replayed on subscribe so a watcher that
// connects mid-run does not start blind.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan entity.StatusUpdate]struct{}
	last map[string]entity.StatusUpdate
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan entity.StatusUpdate]struct{}),
		last: make(map[string]entity.StatusUpdate),
	}
}

// Subscribe registers a watcher for one audit. The returned cancel must be
// called when the watcher goes away.
func (h *Hub) Subscribe(jobID string) (<-chan entity.StatusUpdate, func()) {
	ch := make(chan entity.StatusUpdate, subscriberBuffer)

	h.mu.Lock()
	if h.subs[jobID] == nil {
		h.subs[jobID] = make(map[chan entity.StatusUpdate]struct{})
	}
	h.subs[jobID][ch] = struct{}{}
	last, ok := h.last[jobID]
	h.mu.Unlock()

	if ok {
		ch <- last
	}

	cancel := func() {
		h.mu.Lock()
		if set, found := h.subs[jobID]; found {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, jobID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish records the update and delivers it to every subscriber of the
// audit. A subscriber whose buffer is full loses the update instead of
// blocking the publisher. Channels are per audit and subscriberBuffer
// exceeds the number of updates a single audit publishes, so the buffer
// never fills on the runner's own updates.
func (h *Hub) Publish(u entity.StatusUpdate) {
	h.mu.Lock()
	h.last[u.JobID] = u
	for ch := range h.subs[u.JobID] {
		select {
		case ch <- u:
		default:
		}
	}
	h.mu.Unlock()
}

// Forget drops the retained update of a finished audit.
func (h *Hub) Forget(jobID string) {
	h.mu.Lock()
	delete(h.last, jobID)
	h.mu.Unlock()
}
