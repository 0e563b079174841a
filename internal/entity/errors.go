package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure that crosses the transport boundary.
// No raw error is surfaced to the state machine without a kind.
type ErrorKind string

const (
	// KindUpload and KindStart abort before any tracking begins.
	KindUpload ErrorKind = "UPLOAD"
	KindStart  ErrorKind = "START"
	// KindTransport is transient: polling absorbs isolated instances,
	// push surfaces it without retrying.
	KindTransport ErrorKind = "TRANSPORT"
	// KindJob is authoritative: the server reports the audit itself failed.
	KindJob ErrorKind = "JOB"
	// KindResultsFetch is non-fatal to the job outcome; it degrades the
	// view instead of failing the job.
	KindResultsFetch ErrorKind = "RESULTS_FETCH"
)

// Error is the application error of the tracking core.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewUploadError(message string, cause error) *Error {
	return &Error{Kind: KindUpload, Message: message, Cause: cause}
}

func NewStartError(message string, cause error) *Error {
	return &Error{Kind: KindStart, Message: message, Cause: cause}
}

func NewTransportError(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, Cause: cause}
}

func NewJobError(message string) *Error {
	return &Error{Kind: KindJob, Message: message}
}

func NewResultsFetchError(message string, cause error) *Error {
	return &Error{Kind: KindResultsFetch, Message: message, Cause: cause}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Classify maps an arbitrary failure to the nearest kind. Already-classified
// errors pass through unchanged; anything else becomes fallback.
func Classify(err error, fallback ErrorKind) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: fallback, Message: err.Error(), Cause: err}
}
