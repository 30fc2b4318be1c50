package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

func TestBlueprintCommandPrintsResult(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{blueprint: principle.Blueprint{
		PurposeStatement: "Build tools that free people from drudgery.",
		ExecutionSteps:   []string{"Pick one audience.", "Ship weekly.", "Teach what you learn."},
	}}

	cmd := NewBlueprintCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--burden", "people waste their days",
		"--hand", "I can code",
		"--history", "grew up fixing things",
	})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Purpose Statement:")
	assert.Contains(t, output, "free people from drudgery")
	assert.Contains(t, output, "1. Pick one audience.")
	assert.Contains(t, output, "3. Teach what you learn.")
}

func TestBlueprintCommandFailureIsVisible(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{err: &engine.ResolveError{
		Code:    engine.ErrCodeEngineFailure,
		Message: "synthesis failed",
	}}

	cmd := NewBlueprintCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--burden", "x", "--hand", "y", "--history", "z"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitRetryable, GetExitCode(err))
	assert.Contains(t, buf.String(), "ENGINE_FAILURE")
}

func TestBlueprintCommandRequiresAllFlags(t *testing.T) {
	opts := testRootOptions(t)
	opts.engine = &stubResolver{}

	cmd := NewBlueprintCommand(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--burden", "x", "--hand", "y"}) // missing --history

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history")
}
