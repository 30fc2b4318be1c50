package store

import (
	"errors"
	"fmt"
)

// StoreErrorCode categorizes persistence failures.
type StoreErrorCode string

const (
	// ErrCodeStorageUnavailable indicates the underlying database
	// failed (full, locked, missing). Features should degrade to
	// session-only behavior rather than crash.
	ErrCodeStorageUnavailable StoreErrorCode = "STORAGE_UNAVAILABLE"

	// ErrCodeInvalidFormat indicates an import document that is not
	// parseable JSON or lacks both required fields. The import is
	// rejected wholesale; no partial apply.
	ErrCodeInvalidFormat StoreErrorCode = "INVALID_FORMAT"

	// ErrCodeProfileExists indicates a second commissioning attempt.
	// The profile singleton is immutable once created.
	ErrCodeProfileExists StoreErrorCode = "PROFILE_EXISTS"
)

// StoreError is the typed failure surfaced by the persistence layer.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStorageUnavailable reports whether err is a storage failure.
func IsStorageUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeStorageUnavailable
}

// IsInvalidFormat reports whether err is an import format rejection.
func IsInvalidFormat(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeInvalidFormat
}

// IsProfileExists reports whether err is a duplicate commissioning.
func IsProfileExists(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeProfileExists
}

func unavailable(op string, err error) *StoreError {
	return &StoreError{Code: ErrCodeStorageUnavailable, Message: op + " failed", Err: err}
}

func invalidFormat(message string) *StoreError {
	return &StoreError{Code: ErrCodeInvalidFormat, Message: message}
}
