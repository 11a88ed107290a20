// Package errors provides the tagged error type shared by the
// recommendation client and the workflow controller.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies the failure kind. The three fetch kinds are
// collapsed into one user-facing message but stay distinguishable for
// logging, metrics and tests.
type ErrorCode string

const (
	// Fetch failures (recommendation call).
	ErrCodeTransport         ErrorCode = "TRANSPORT_ERROR"
	ErrCodePeerRejected      ErrorCode = "PEER_REJECTED"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	// Workflow preconditions.
	ErrCodeSubmissionInFlight    ErrorCode = "SUBMISSION_IN_FLIGHT"
	ErrCodeNotAuthenticated      ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeMissingRequiredFields ErrorCode = "MISSING_REQUIRED_FIELDS"
	ErrCodeProfileLocked         ErrorCode = "PROFILE_LOCKED"
	ErrCodeUnknownField          ErrorCode = "UNKNOWN_FIELD"
)

// FetchFailedMessage is the single message surfaced to the user for any
// fetch failure, regardless of the underlying kind.
const FetchFailedMessage = "Failed to fetch recommendations"

// StandardError is a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewTransportError wraps a connection-level failure (DNS, refused
// connection, timeout).
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransport,
		Message:   FetchFailedMessage,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPeerRejectedError records a non-2xx status. The status lands in
// Details only; the user-facing message stays generic.
func NewPeerRejectedError(statusCode int) *StandardError {
	return &StandardError{
		Code:      ErrCodePeerRejected,
		Message:   FetchFailedMessage,
		Details:   fmt.Sprintf("status %d %s", statusCode, http.StatusText(statusCode)),
		Retryable: statusCode >= http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedResponseError wraps a JSON decode failure on a 2xx body.
func NewMalformedResponseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   FetchFailedMessage,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionInFlightError rejects a submission while another one is
// still pending.
func NewSubmissionInFlightError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionInFlight,
		Message:   "A submission is already in flight",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotAuthenticatedError rejects a submission without a session.
func NewNotAuthenticatedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNotAuthenticated,
		Message:   "Sign in before searching for similar users",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingRequiredFieldsError rejects a submission with empty
// required fields.
func NewMissingRequiredFieldsError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredFields,
		Message:   "Please fill in all required fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileLockedError rejects a field update outside the collection
// phase.
func NewProfileLockedError(phase string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileLocked,
		Message:   "Profile fields can only be edited while collecting input",
		Details:   fmt.Sprintf("current phase: %s", phase),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownFieldError rejects an update keyed by a field name outside
// the profile catalog.
func NewUnknownFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownField,
		Message:   "Unknown profile field",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the ErrorCode from err, or "" when err is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsFetchFailure reports whether err is one of the three fetch failure
// kinds surfaced as FetchFailedMessage.
func IsFetchFailure(err error) bool {
	switch CodeOf(err) {
	case ErrCodeTransport, ErrCodePeerRejected, ErrCodeMalformedResponse:
		return true
	}
	return false
}
