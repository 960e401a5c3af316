package domain

import "fmt"

// Error types for consistent error handling across the gateway layer.

// ErrNetwork indicates a transport-level failure (DNS, refused connection,
// timeout) before any HTTP response was received. User-retryable; the
// gateway never retries on its own.
type ErrNetwork struct {
	Endpoint string
	Err      error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.Endpoint, e.Err)
}

func (e *ErrNetwork) Unwrap() error {
	return e.Err
}

// ErrHTTP indicates the remote service rejected the request with a non-2xx
// status. Message is server-authored and shown to the user verbatim.
type ErrHTTP struct {
	Status  int
	Message string
}

func (e *ErrHTTP) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote service returned status %d", e.Status)
}

// ErrValidation indicates a validation error caught before any network call.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrParse indicates a malformed body. Success-path parse failures degrade
// to a null payload instead; this surfaces only where a shape is mandatory.
type ErrParse struct {
	What string
	Err  error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates there is no active session (or the stored one
// is stale); callers treat this as "go to login".
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}
