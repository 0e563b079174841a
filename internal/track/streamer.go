package track

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/audittax/audittax/internal/entity"
)

// Streamer tracks a job over one persistent push connection. It closes the
// connection itself on a terminal status; on a transport error it surfaces
// the failure and does not retry; retry and fallback policy belongs to
// the controller.
type Streamer struct {
	backend entity.Backend
	logger  *slog.Logger
}

func NewStreamer(backend entity.Backend, logger *slog.Logger) *Streamer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Streamer{backend: backend, logger: logger}
}

func (s *Streamer) Activate(ctx context.Context, jobID string, deliver func(entity.StatusUpdate), fail func(error)) (*Subscription, error) {
	stream, err := s.backend.WatchStatus(ctx, jobID)
	if err != nil {
		return nil, entity.Classify(err, entity.KindTransport)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := NewSubscription(func() {
		cancel()
		if cerr := stream.Close(); cerr != nil {
			s.logger.Warn("track.push.close_failed", "job_id", jobID, "error", cerr)
		}
	})
	go s.loop(ctx, jobID, stream, deliver, fail, sub)
	return sub, nil
}

func (s *Streamer) loop(ctx context.Context, jobID string, stream entity.StatusStream, deliver func(entity.StatusUpdate), fail func(error), sub *Subscription) {
	for {
		u, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			s.logger.Warn("track.push.recv_failed", "job_id", jobID, "error", err)
			fail(entity.Classify(err, entity.KindTransport))
			return
		}

		if ctx.Err() != nil {
			return
		}
		deliver(u)
		if u.Status.IsTerminal() {
			sub.Cancel()
			return
		}
	}
}
