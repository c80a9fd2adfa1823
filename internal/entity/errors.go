package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrAPIKeyMissing is reported per request when the vendor credential is
	// absent; the process itself keeps running.
	ErrAPIKeyMissing = errors.New("API key not configured")

	// ErrNoEmails rejects an export call with an empty draft list.
	ErrNoEmails = errors.New("no emails to export")
)

// TransportError wraps a network-level failure (connection refused, timeout)
// on the vendor call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vendor request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// VendorError is a non-2xx response from the LLM vendor. The status code is
// folded into the caller-facing message, never proxied verbatim.
type VendorError struct {
	StatusCode int
	Body       string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("API request failed: %d", e.StatusCode)
}

// ExtractionError means the raw completion could not be coerced into the
// expected structure after every leniency layer was exhausted. Cause keeps
// the original parse failure for diagnostics.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	return e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ValidationError means the candidate parsed but failed the schema contract.
// Index is the 1-based position of the first failing draft; Index 0 means
// the failure is at the top level.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("invalid response structure: %s", e.Reason)
	}
	return fmt.Sprintf("email %d field %q: %s", e.Index, e.Field, e.Reason)
}
