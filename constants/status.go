package constants

// JobStatus is the canonical lifecycle status of an audit job.
type JobStatus string

// Stable values (the server reports these exact strings).
const (
	JobStatusReady      JobStatus = "ready"      // uploaded, not yet started
	JobStatusProcessing JobStatus = "processing" // audit in progress
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusError      JobStatus = "error"      // terminal failure
)

// JobStatuses lists every valid lifecycle status, for validation.
var JobStatuses = []string{
	string(JobStatusReady),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusError),
}

// IsTerminal reports whether no further status updates are expected.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusError
}

// ItemStatus is the per-line-item audit outcome.
type ItemStatus string

const (
	ItemStatusCompliant ItemStatus = "compliant"
	ItemStatusDivergent ItemStatus = "divergent"
)

// ItemStatuses lists every valid item status, for validation.
var ItemStatuses = []string{
	string(ItemStatusCompliant),
	string(ItemStatusDivergent),
}

// FilterMode selects which item statuses a projection includes.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterCompliant FilterMode = "compliant"
	FilterDivergent FilterMode = "divergent"
)
