package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCommandPrintsRecordAndFillsVault(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{record: builtinRecord(t)}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"anxiety"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "MENTAL HEALTH")
	assert.Contains(t, output, "Action Plan:")
	assert.Contains(t, output, "[mental-001]")

	vault, err := opts.store.Vault(context.Background())
	require.NoError(t, err)
	require.Len(t, vault, 1)
	assert.Equal(t, "mental-001", vault[0].ID)
	assert.Equal(t, "anxiety", vault[0].Query)
}

func TestResolveCommandJoinsMultiWordQuery(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{record: builtinRecord(t)}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"business", "idea"})

	require.NoError(t, cmd.Execute())

	vault, err := opts.store.Vault(context.Background())
	require.NoError(t, err)
	require.Len(t, vault, 1)
	assert.Equal(t, "business idea", vault[0].Query)
}

func TestResolveCommandUpstreamFailureIsRetryable(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{err: upstreamErr()}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"anything"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitRetryable, GetExitCode(err))
	assert.Contains(t, buf.String(), "could not retrieve a specific principle")

	// Nothing reaches the vault on failure
	vault, verr := opts.store.Vault(context.Background())
	require.NoError(t, verr)
	assert.Empty(t, vault)
}

func TestResolveCommandNoMatchRendersSameState(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.engine = &stubResolver{err: noMatchErr()}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"gibberish"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitRetryable, GetExitCode(err))
	assert.Contains(t, buf.String(), "could not retrieve a specific principle")
}

func TestResolveCommandJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testRootOptions(t)
	opts.Format = "json"
	opts.engine = &stubResolver{record: builtinRecord(t)}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"anxiety"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"status":"ok"`)
	assert.Contains(t, buf.String(), `"id":"mental-001"`)
}

func TestResolveCommandMissingQuery(t *testing.T) {
	opts := testRootOptions(t)
	opts.engine = &stubResolver{record: builtinRecord(t)}

	cmd := NewResolveCommand(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
