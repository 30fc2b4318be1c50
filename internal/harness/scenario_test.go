package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ParsesSteps(t *testing.T) {
	sc, err := LoadScenario("testdata/scenarios/sovereign-journey.yaml")
	require.NoError(t, err)

	assert.Equal(t, "sovereign-journey", sc.Name)
	require.Len(t, sc.Steps, 6)
	require.NotNil(t, sc.Steps[0].Commission)
	assert.Equal(t, "Ada Lovelace", sc.Steps[0].Commission.Name)
	require.NotNil(t, sc.Steps[1].Resolve)
	assert.Equal(t, "marriage", sc.Steps[1].Resolve.Query)
	require.NotNil(t, sc.Steps[3].Toggle)
	assert.Equal(t, 1, sc.Steps[3].Toggle.Step)
	assert.True(t, sc.Steps[4].Stats)
	assert.True(t, sc.Steps[5].Export)
}

func TestLoadScenario_RejectsMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - stats: true\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestLoadScenario_RejectsEmptySteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no steps")
}

func TestLoadScenarioDir_LoadsAll(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	names := make(map[string]bool)
	for _, sc := range scenarios {
		names[sc.Name] = true
	}
	for _, want := range []string{
		"builtin-resolution",
		"upstream-failure",
		"progress-toggles",
		"sovereign-journey",
		"import-restore",
	} {
		assert.True(t, names[want], "scenario %q not loaded", want)
	}
}
