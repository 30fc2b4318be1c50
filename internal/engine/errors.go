package engine

import (
	"errors"
	"fmt"
)

// ResolveErrorCode categorizes resolver and synthesizer failures.
type ResolveErrorCode string

const (
	// ErrCodeNoMatch indicates the query missed the built-in table and
	// the generative backend produced no content for it.
	ErrCodeNoMatch ResolveErrorCode = "NO_MATCH"

	// ErrCodeUpstreamFailure indicates the generative call failed in
	// transit or its output failed the schema-checked decode.
	ErrCodeUpstreamFailure ResolveErrorCode = "UPSTREAM_FAILURE"

	// ErrCodeEngineFailure indicates a blueprint synthesis failure,
	// including unmet input preconditions.
	ErrCodeEngineFailure ResolveErrorCode = "ENGINE_FAILURE"
)

// ResolveError is the typed failure surfaced by the engine. No raw
// transport error crosses this boundary; everything is converted to a
// ResolveError before reaching the interaction layer.
type ResolveError struct {
	Code    ResolveErrorCode
	Message string
	Query   string // offending query, when applicable
	Err     error  // underlying cause
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("%s: %s (query=%q)", e.Code, e.Message, e.Query)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// IsNoMatch reports whether err is a NO_MATCH resolver failure.
// Uses errors.As to handle wrapped errors.
func IsNoMatch(err error) bool {
	var re *ResolveError
	return errors.As(err, &re) && re.Code == ErrCodeNoMatch
}

// IsUpstreamFailure reports whether err is an UPSTREAM_FAILURE.
func IsUpstreamFailure(err error) bool {
	var re *ResolveError
	return errors.As(err, &re) && re.Code == ErrCodeUpstreamFailure
}

// IsEngineFailure reports whether err is an ENGINE_FAILURE.
func IsEngineFailure(err error) bool {
	var re *ResolveError
	return errors.As(err, &re) && re.Code == ErrCodeEngineFailure
}

// Retryable reports whether the user should be offered a retry of the
// same action without reloading anything. All resolver and synthesizer
// failures are retryable.
func Retryable(err error) bool {
	var re *ResolveError
	return errors.As(err, &re)
}
