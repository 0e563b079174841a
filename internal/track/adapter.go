package track

import (
	"context"
	"sync"

	"github.com/audittax/audittax/internal/entity"
)

// Adapter activates one status-update channel (poll or push) for a job.
// Updates are delivered through deliver until a terminal status arrives or
// the returned subscription is cancelled; unrecoverable transport failures
// are reported through fail exactly once.
type Adapter interface {
	Activate(ctx context.Context, jobID string, deliver func(entity.StatusUpdate), fail func(error)) (*Subscription, error)
}

// Subscription is the handle for one active adapter. Cancel is idempotent
// and is the only sanctioned way to stop delivery.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}
