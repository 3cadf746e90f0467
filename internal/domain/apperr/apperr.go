// Package apperr defines the error taxonomy shared by all endpoints:
// validation failures, provider not-found conditions, and upstream failures.
// The HTTP layer maps each kind to a status code in exactly one place.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// KindValidation marks client input errors (bad symbol, bad date, bad range).
	KindValidation Kind = iota + 1
	// KindNotFound marks empty provider results or provider-signaled not-found.
	KindNotFound
	// KindUpstream marks any other provider or library failure.
	KindUpstream
)

// Error is the single error type surfaced by services and the provider layer.
//
// Message is what the client sees in the `error` field of the response body.
// Err, when present, is the underlying cause and is appended to the message
// so upstream failures remain diagnosable (no retries happen anywhere, so
// the original message is the only trace the caller gets).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Validation builds a client-error (HTTP 400).
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound builds a not-found error (HTTP 404).
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Upstream builds an internal error (HTTP 500) carrying the underlying cause.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindUpstream when err is not an *Error.
// Unknown errors are treated as internal failures rather than leaking as 200s.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
