package analyzer

import "fmt"

// ErrorKind categorizes analysis failures for HTTP status mapping.
type ErrorKind int

const (
	// ErrInternal represents an unclassified failure.
	ErrInternal ErrorKind = iota
	// ErrInvalidInput indicates the URL was malformed.
	ErrInvalidInput
	// ErrUnreachable indicates the target could not be reached.
	ErrUnreachable
	// ErrBadStatus indicates the target answered with a non-success status.
	ErrBadStatus
)

// AnalysisError carries a failure category, a user-facing message, and
// the original cause. Only the fetch boundary produces these; every
// later pipeline stage is total.
type AnalysisError struct {
	Kind           ErrorKind
	UpstreamStatus int
	Message        string
	Cause          error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
