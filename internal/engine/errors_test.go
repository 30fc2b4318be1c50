package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveError_Message(t *testing.T) {
	err := &ResolveError{Code: ErrCodeNoMatch, Message: "nothing found", Query: "xyz"}
	assert.Equal(t, `NO_MATCH: nothing found (query="xyz")`, err.Error())

	err = &ResolveError{Code: ErrCodeEngineFailure, Message: "inputs required"}
	assert.Equal(t, "ENGINE_FAILURE: inputs required", err.Error())
}

func TestErrorPredicates_WrappedErrors(t *testing.T) {
	base := &ResolveError{Code: ErrCodeUpstreamFailure, Message: "call failed"}
	wrapped := fmt.Errorf("resolving: %w", base)

	assert.True(t, IsUpstreamFailure(wrapped))
	assert.False(t, IsNoMatch(wrapped))
	assert.True(t, Retryable(wrapped))
}

func TestErrorPredicates_ForeignError(t *testing.T) {
	err := errors.New("plain")
	assert.False(t, IsNoMatch(err))
	assert.False(t, IsUpstreamFailure(err))
	assert.False(t, IsEngineFailure(err))
	assert.False(t, Retryable(err))
}

func TestResolveError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ResolveError{Code: ErrCodeUpstreamFailure, Message: "m", Err: cause}
	assert.ErrorIs(t, err, cause)
}
