package track

import (
	"context"
	"log/slog"
	"time"

	"github.com/audittax/audittax/internal/entity"
)

// Poller tracks a job by querying its status on a fixed interval.
type Poller struct {
	backend     entity.Backend
	interval    time.Duration
	maxFailures int
	logger      *slog.Logger
}

func NewPoller(backend entity.Backend, interval time.Duration, maxFailures int, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	if maxFailures <= 0 {
		maxFailures = 5
	}
	return &Poller{backend: backend, interval: interval, maxFailures: maxFailures, logger: logger}
}

func (p *Poller) Activate(ctx context.Context, jobID string, deliver func(entity.StatusUpdate), fail func(error)) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := NewSubscription(cancel)
	go p.loop(ctx, jobID, deliver, fail)
	return sub, nil
}

func (p *Poller) loop(ctx context.Context, jobID string, deliver func(entity.StatusUpdate), fail func(error)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		u, err := p.backend.PollStatus(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// One failed poll must not terminate tracking; only a run of
			// consecutive failures does.
			failures++
			p.logger.Warn("track.poll.failed", "job_id", jobID, "failures", failures, "error", err)
			if failures >= p.maxFailures {
				fail(entity.Classify(err, entity.KindTransport))
				return
			}
			continue
		}
		failures = 0

		if ctx.Err() != nil {
			return
		}
		deliver(u)
		if u.Status.IsTerminal() {
			return
		}
	}
}
