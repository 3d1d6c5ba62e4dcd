package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (stdout, stderr string, err error) {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}

	cmd := NewRootCommand()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

const defaultTranscript = `--- Clean-Water Plant Operations Starting ---

[Chemical Filter CHEM-101] is neutralizing chlorine levels. Usage increased.
Calculating efficiency for CHEM-101...
ERROR: cannot calculate efficiency: no water has passed through this filter yet

Session Ended. System Shutdown.
`

// ---------------------------------------------------------------------------
// Help output
// ---------------------------------------------------------------------------

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	require.NoError(t, err)

	for _, sub := range []string{"version", "kinds", "config", "completion"} {
		assert.Contains(t, stdout, sub, "help should mention %q subcommand", sub)
	}

	for _, flag := range []string{"--config", "--log-level", "--log-format", "--quiet", "--kind", "--filter-id", "--cycles", "--reset"} {
		assert.Contains(t, stdout, flag, "help should mention %q flag", flag)
	}
}

// ---------------------------------------------------------------------------
// Scenario
// ---------------------------------------------------------------------------

func TestRootCommand_DefaultScenario(t *testing.T) {
	stdout, _, err := executeCommand()
	require.NoError(t, err)
	assert.Equal(t, defaultTranscript, stdout)
}

func TestRootCommand_NoReset(t *testing.T) {
	stdout, _, err := executeCommand("--reset=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Efficiency: 95.5%\n")
	assert.True(t, strings.HasSuffix(stdout, "Session Ended. System Shutdown.\n"))
}

func TestRootCommand_CarbonKind(t *testing.T) {
	stdout, _, err := executeCommand("--kind", "carbon", "--filter-id", "CARB-3", "--cycles", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "[Carbon Filter CARB-3] is trapping physical debris."))
	assert.Contains(t, stdout, "ERROR: cannot calculate efficiency")
}

func TestRootCommand_BlankIDIsGeneralError(t *testing.T) {
	stdout, _, err := executeCommand("--filter-id", " ")
	require.NoError(t, err, "scenario failures never fail the command")
	assert.Contains(t, stdout, "GENERAL ERROR: filter ID cannot be empty\n")
	assert.True(t, strings.HasSuffix(stdout, "\nSession Ended. System Shutdown.\n"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand("extra")
	require.Error(t, err)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(p, []byte("kind: carbon\nfilter-id: CARB-FILE\nreset: false\n"), 0o600))

	stdout, _, err := executeCommand("--config", p)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Carbon Filter CARB-FILE]")
	assert.Contains(t, stdout, "Efficiency: 95.5%")
}

func TestRootCommand_EnvOverride(t *testing.T) {
	t.Setenv("CLEANWATER_FILTER_ID", "CHEM-ENV")

	stdout, _, err := executeCommand()
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Chemical Filter CHEM-ENV]")
}

// ---------------------------------------------------------------------------
// Exit codes
// ---------------------------------------------------------------------------

func TestRootCommand_InvalidLogLevelExitCode(t *testing.T) {
	_, _, err := executeCommand("--log-level", "verbose")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRootCommand_NegativeCyclesExitCode(t *testing.T) {
	_, _, err := executeCommand("--cycles=-1")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRootCommand_UnknownFlagExitCode(t *testing.T) {
	_, _, err := executeCommand("--nope")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())

	inner := assert.AnError
	e := &ExitError{Code: 2, Err: inner}
	assert.Equal(t, inner.Error(), e.Error())
	assert.ErrorIs(t, e, inner)
}

// ---------------------------------------------------------------------------
// Subcommands
// ---------------------------------------------------------------------------

func TestKindsCommand(t *testing.T) {
	stdout, _, err := executeCommand("kinds")
	require.NoError(t, err)
	assert.Equal(t, "carbon\nchemical\n", stdout)
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := executeCommand("config", "--kind", "carbon", "--cycles", "4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kind: carbon\n")
	assert.Contains(t, stdout, "cycles: 4\n")
	assert.Contains(t, stdout, "filter-id: CHEM-101\n")
	assert.Contains(t, stdout, "reset: true\n")
	assert.NotContains(t, stdout, "Session Ended")
}
