package reconcile

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the engine
var (
	// ErrUpstreamUnavailable indicates the list page could not be fetched.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrPersistenceFailure indicates the batch commit failed and was rolled back.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrDetailFetch indicates a single detail could not be fetched. Never fatal.
	ErrDetailFetch = errors.New("detail fetch failed")

	// ErrMalformedRecord indicates a detail lacks its identity or name. Never fatal.
	ErrMalformedRecord = errors.New("malformed record")
)

// UpstreamError wraps a failure of the upstream list call.
type UpstreamError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream unavailable: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// PersistenceError wraps a failed batch commit.
type PersistenceError struct {
	Records int
	Err     error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: commit of %d records rolled back: %v", e.Records, e.Err)
}

// Unwrap returns the underlying store error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}
