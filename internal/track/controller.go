package track

import (
	"context"
	"log/slog"
	"sync"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
	"github.com/audittax/audittax/internal/view"
)

// Phase is the controller's state machine position. It mirrors the job
// status with the pre-upload idle and uploading phases added.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseUploading  Phase = "uploading"
	PhaseProcessing Phase = "processing"
	PhaseCompleted  Phase = "completed"
	PhaseError      Phase = "error"
)

// Snapshot is a copy of the controller state safe to hand to consumers.
type Snapshot struct {
	Phase Phase
	Job   *entity.JobRecord
	View  *entity.View
	// LocalError carries failures that happened before a job id existed
	// (upload/start); they are not part of any job record.
	LocalError string
}

// Controller owns the Job Record for one live audit at a time. It selects
// the transport adapter, applies updates in order, detects terminal states
// and triggers the one-time detailed-result fetch.
type Controller struct {
	backend    entity.Backend
	push       Adapter
	poll       Adapter
	preferPush bool
	logger     *slog.Logger

	ctx      context.Context
	shutdown context.CancelFunc

	mu         sync.Mutex
	phase      Phase
	job        *entity.JobRecord
	view       *entity.View
	localError string
	sub        *Subscription
	fellBack   bool
	// gen fences callbacks: a discarded job's late updates must not touch
	// the state that replaced it.
	gen int

	notify func(Snapshot)
}

func NewController(backend entity.Backend, cfg common.ClientConfig, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := newController(
		backend,
		NewStreamer(backend, logger),
		NewPoller(backend, cfg.PollInterval, cfg.MaxPollFailures, logger),
		cfg.PreferPush,
		logger,
	)
	return c
}

func newController(backend entity.Backend, push, poll Adapter, preferPush bool, logger *slog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		backend:    backend,
		push:       push,
		poll:       poll,
		preferPush: preferPush,
		logger:     logger,
		ctx:        ctx,
		shutdown:   cancel,
		phase:      PhaseIdle,
	}
}

// SetNotify registers a callback invoked after every observable state
// change, outside the controller lock.
func (c *Controller) SetNotify(fn func(Snapshot)) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{Phase: c.phase, LocalError: c.localError}
	if c.job != nil {
		j := *c.job
		s.Job = &j
	}
	if c.view != nil {
		v := *c.view
		s.View = &v
	}
	return s
}

// Submit uploads a document, starts the audit and activates a transport
// adapter for the returned job id. Any previous error and result are
// cleared. One live job is tracked at a time.
func (c *Controller) Submit(ctx context.Context, doc entity.Document) error {
	c.mu.Lock()
	if c.phase == PhaseUploading || c.phase == PhaseProcessing {
		c.mu.Unlock()
		return common.NewAppError(common.ErrCodeConflict, "an audit is already being tracked", common.ErrConflict)
	}
	c.phase = PhaseUploading
	c.job = nil
	c.view = nil
	c.localError = ""
	c.fellBack = false
	gen := c.gen
	c.mu.Unlock()
	c.fireNotify()

	receipt, err := c.backend.Upload(ctx, doc)
	if err != nil {
		appErr := entity.Classify(err, entity.KindUpload)
		c.abortSubmit(gen, appErr.Message)
		return appErr
	}

	if err := c.backend.Start(ctx, receipt.JobID); err != nil {
		appErr := entity.Classify(err, entity.KindStart)
		c.abortSubmit(gen, appErr.Message)
		return appErr
	}

	c.mu.Lock()
	if c.gen != gen {
		// Reset raced the submission; the job is abandoned.
		c.mu.Unlock()
		return nil
	}
	c.job = &entity.JobRecord{
		ID:     receipt.JobID,
		Status: constants.JobStatusProcessing,
		Step:   "Iniciando auditoria...",
	}
	c.phase = PhaseProcessing
	jobID := c.job.ID
	c.mu.Unlock()
	c.fireNotify()

	c.activateAdapter(gen, jobID, c.initialAdapter())
	return nil
}

func (c *Controller) initialAdapter() Adapter {
	if c.preferPush {
		return c.push
	}
	return c.poll
}

func (c *Controller) abortSubmit(gen int, message string) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseIdle
	c.localError = message
	c.mu.Unlock()
	c.fireNotify()
}

func (c *Controller) activateAdapter(gen int, jobID string, a Adapter) {
	deliver := func(u entity.StatusUpdate) { c.applyUpdate(gen, u) }
	fail := func(err error) { c.adapterFailed(gen, jobID, err) }

	sub, err := a.Activate(c.ctx, jobID, deliver, fail)
	if err != nil {
		c.adapterFailed(gen, jobID, err)
		return
	}

	c.mu.Lock()
	if c.gen != gen || c.phase != PhaseProcessing {
		// Terminal update or reset won the race; no orphaned source may
		// keep mutating a discarded record.
		c.mu.Unlock()
		sub.Cancel()
		return
	}
	if c.sub != nil {
		old := c.sub
		c.sub = sub
		c.mu.Unlock()
		old.Cancel()
		return
	}
	c.sub = sub
	c.mu.Unlock()
}

// applyUpdate is the single entry point for both transports.
func (c *Controller) applyUpdate(gen int, u entity.StatusUpdate) {
	c.mu.Lock()
	if c.gen != gen || c.job == nil || c.phase != PhaseProcessing {
		// Discarded job or already terminal; duplicate completed updates
		// from a second transport land here.
		c.mu.Unlock()
		return
	}
	c.job.Apply(u)

	switch u.Status {
	case constants.JobStatusCompleted:
		c.phase = PhaseCompleted
		sub := c.sub
		c.sub = nil
		fetch := !c.job.ResultsFetched
		c.job.ResultsFetched = true
		jobID := c.job.ID
		c.mu.Unlock()
		if sub != nil {
			sub.Cancel()
		}
		c.fireNotify()
		if fetch {
			go c.fetchResults(gen, jobID)
		}

	case constants.JobStatusError:
		c.phase = PhaseError
		sub := c.sub
		c.sub = nil
		v := view.Combine(*c.job, nil)
		c.view = &v
		c.mu.Unlock()
		if sub != nil {
			sub.Cancel()
		}
		c.logger.Warn("track.job.failed", "job_id", u.JobID, "error", u.Error)
		c.fireNotify()

	default:
		c.mu.Unlock()
		c.fireNotify()
	}
}

// fetchResults runs the one-time enrichment fetch. A failure degrades the
// view to lifecycle-only; the audit itself did succeed.
func (c *Controller) fetchResults(gen int, jobID string) {
	bundle, err := c.backend.FetchResults(c.ctx, jobID)

	c.mu.Lock()
	if c.gen != gen || c.job == nil {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Warn("track.fetch.degraded", "job_id", jobID, "error", err)
		v := view.Combine(*c.job, nil)
		c.view = &v
	} else {
		v := view.Combine(*c.job, bundle)
		c.view = &v
	}
	c.mu.Unlock()
	c.fireNotify()
}

// adapterFailed implements the controller-side transport policy: the push
// channel falls back to polling once; a failed polling run ends tracking
// with the failure attached to the job record.
func (c *Controller) adapterFailed(gen int, jobID string, err error) {
	c.mu.Lock()
	if c.gen != gen || c.phase != PhaseProcessing {
		c.mu.Unlock()
		return
	}
	if !c.fellBack {
		c.fellBack = true
		sub := c.sub
		c.sub = nil
		c.mu.Unlock()
		if sub != nil {
			sub.Cancel()
		}
		c.logger.Warn("track.push.fallback", "job_id", jobID, "error", err)
		c.activateAdapter(gen, jobID, c.poll)
		return
	}

	c.phase = PhaseError
	sub := c.sub
	c.sub = nil
	appErr := entity.Classify(err, entity.KindTransport)
	c.job.Status = constants.JobStatusError
	c.job.ErrorMessage = "status tracking lost: " + appErr.Message
	v := view.Combine(*c.job, nil)
	c.view = &v
	c.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
	c.logger.Error("track.transport.lost", "job_id", jobID, "error", err)
	c.fireNotify()
}

// Reset returns the controller to idle, deactivating any active adapter
// and discarding the job record and result.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.gen++
	sub := c.sub
	c.sub = nil
	c.job = nil
	c.view = nil
	c.localError = ""
	c.fellBack = false
	c.phase = PhaseIdle
	c.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
	c.fireNotify()
}

// Close tears the controller down; it must be called when the consumer
// unmounts so no poll timer or push connection outlives it.
func (c *Controller) Close() {
	c.Reset()
	c.shutdown()
}

func (c *Controller) fireNotify() {
	c.mu.Lock()
	fn := c.notify
	var s Snapshot
	if fn != nil {
		s = c.snapshotLocked()
	}
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}
