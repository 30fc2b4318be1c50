package cli

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgressCmd(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewProgressCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestProgressToggleAndShow(t *testing.T) {
	opts := testRootOptions(t)

	out, err := runProgressCmd(t, opts, "toggle", "mental-001", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 3 of mental-001 marked done")

	out, err = runProgressCmd(t, opts, "show", "mental-001")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed steps: 3 (1/7)")
}

func TestProgressToggleTwiceClears(t *testing.T) {
	opts := testRootOptions(t)

	_, err := runProgressCmd(t, opts, "toggle", "mental-001", "5")
	require.NoError(t, err)
	out, err := runProgressCmd(t, opts, "toggle", "mental-001", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "marked cleared")

	out, err = runProgressCmd(t, opts, "show", "mental-001")
	require.NoError(t, err)
	assert.Contains(t, out, "No steps completed")
}

func TestProgressToggleRejectsBadStep(t *testing.T) {
	opts := testRootOptions(t)

	for _, step := range []string{"0", "8", "seven"} {
		_, err := runProgressCmd(t, opts, "toggle", "mental-001", step)
		require.Error(t, err, "step %q", step)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	}
}

func TestProgressFullPlanReportsMastery(t *testing.T) {
	opts := testRootOptions(t)

	var out string
	var err error
	for step := 1; step <= 7; step++ {
		out, err = runProgressCmd(t, opts, "toggle", "mental-001", strconv.Itoa(step))
		require.NoError(t, err)
	}
	assert.Contains(t, out, "plan mastered")
}
