package application

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Typed errors below map
// themselves onto these via Is so callers can classify with errors.Is
// without knowing the concrete type.
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrRetryExhausted = errors.New("retries exhausted")
	ErrNotConfigured  = errors.New("no profile configured")

	// ErrCredentialNotFound is the credential store's absent case; every
	// other credential store failure is fatal.
	ErrCredentialNotFound = errors.New("credential not found")
)

// Process exit codes. The dispatcher is the only component that turns an
// error into one of these.
const (
	ExitOK             = 0
	ExitValidation     = 2
	ExitAuth           = 3
	ExitNotFound       = 4
	ExitConflict       = 5
	ExitRetryExhausted = 6
	ExitUnknown        = 10
	ExitCancelled      = 130
)

// ValidationError represents bad or missing input, detected before
// anything is sent over the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RequestError is a non-2xx response from the wiki API. Message is the
// best-effort human text extracted from the response body; it never
// contains token material.
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Reason  string
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Reason)
}

// Is classifies the HTTP status into the taxonomy sentinels.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	case ErrConflict:
		return e.Status == 409
	}
	return false
}

// RetryExhaustedError is surfaced when the retry budget for a transient
// condition runs out. Last holds the final attempt's failure.
type RetryExhaustedError struct {
	Attempts int
	Last     error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetryExhaustedError) Is(target error) bool {
	return target == ErrRetryExhausted
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Last
}

// ExitCode maps a classified error to the process exit code.
func ExitCode(err error) int {
	var verr *ValidationError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.As(err, &verr), errors.Is(err, ErrNotConfigured):
		return ExitValidation
	case errors.Is(err, ErrUnauthorized):
		return ExitAuth
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrConflict):
		return ExitConflict
	case errors.Is(err, ErrRetryExhausted):
		return ExitRetryExhausted
	default:
		return ExitUnknown
	}
}

// ErrorCode maps a classified error to the stable machine-readable code
// used in the output envelope.
func ErrorCode(err error) string {
	var verr *ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.As(err, &verr):
		return "validation_error"
	case errors.Is(err, ErrUnauthorized):
		return "auth_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrRetryExhausted):
		return "retry_exhausted"
	default:
		return "unknown"
	}
}

// ErrorHint returns an actionable suggestion for the envelope, or "".
func ErrorHint(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "run 'auth login --base-url <url>' or pass --base-url"
	case errors.Is(err, ErrUnauthorized):
		return "run 'auth login' again or set INKWELL_API_TOKEN"
	case errors.Is(err, ErrRetryExhausted):
		return "the server is rate limiting or unavailable; retry later"
	default:
		return ""
	}
}
