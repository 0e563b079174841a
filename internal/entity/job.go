package entity

import (
	"time"

	"github.com/audittax/audittax/constants"
)

// JobRecord is the canonical in-memory representation of one audit job.
// It is owned exclusively by the tracking controller for the duration of
// one job's live tracking and discarded on reset.
type JobRecord struct {
	ID             string              `json:"id"`
	Status         constants.JobStatus `json:"status"`
	Progress       int                 `json:"progress"`
	Step           string              `json:"step"`
	ErrorMessage   string              `json:"error,omitempty"`
	ResultsFetched bool                `json:"-"` // latch: one results fetch per job
}

// Apply folds a status update into the record. Progress regressions are
// ignored so that a straggler response from a slower transport cannot move
// the exposed state backwards.
func (j *JobRecord) Apply(u StatusUpdate) {
	if u.Progress > j.Progress {
		j.Progress = clampProgress(u.Progress)
	}
	if u.Step != "" {
		j.Step = u.Step
	}
	j.Status = u.Status
	if u.Status == constants.JobStatusCompleted {
		j.Progress = 100
	}
	if u.Status == constants.JobStatusError {
		j.ErrorMessage = u.Error
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// StatusUpdate is the unit delivered by both transports: one poll response
// or one push message.
type StatusUpdate struct {
	JobID     string              `json:"audit_id,omitempty"`
	Status    constants.JobStatus `json:"status"`
	Progress  int                 `json:"progress"`
	Step      string              `json:"step"`
	Error     string              `json:"error,omitempty"`
	Timestamp time.Time           `json:"timestamp,omitempty"`
}
