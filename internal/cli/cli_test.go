package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given stdin and arguments
// from an empty working directory, so no stray config file leaks in.
func runCommand(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if in != "" {
		cmd.SetIn(strings.NewReader(in))
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval_Args(t *testing.T) {
	stdout, _, err := runCommand(t, "", "eval", "3+5*2", "2^3^2")
	require.NoError(t, err)
	assert.Equal(t, "13\n512\n", stdout)
}

func TestEval_Stdin(t *testing.T) {
	stdout, _, err := runCommand(t, "5!\n\n10%3\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "120\n1\n", stdout)
}

func TestEval_Format(t *testing.T) {
	stdout, _, err := runCommand(t, "", "eval", "--format", "%.2f", "3+5*2")
	require.NoError(t, err)
	assert.Equal(t, "13.00\n", stdout)
}

func TestEval_ErrorContinues(t *testing.T) {
	stdout, stderr, err := runCommand(t, "", "eval", "8/0", "1+1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 expressions failed")
	assert.Contains(t, stderr, "division by zero")
	assert.Equal(t, "2\n", stdout)
}

func TestStddev(t *testing.T) {
	stdout, _, err := runCommand(t, "2 4 4 4 5 5 7 9", "stddev", "--format", "%.4f")
	require.NoError(t, err)
	assert.Equal(t, "2.1381\n", stdout)
}

func TestStddev_StopToken(t *testing.T) {
	stdout, _, err := runCommand(t, "1 2 end 100 200", "stddev", "--format", "%.4f")
	require.NoError(t, err)
	assert.Equal(t, "0.7071\n", stdout)
}

func TestStddev_InvalidTokenSkipped(t *testing.T) {
	stdout, stderr, err := runCommand(t, "1 two 3", "stddev", "--format", "%.4f")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Invalid input: two")
	assert.Equal(t, "1.4142\n", stdout)
}

func TestStddev_TooFewSamples(t *testing.T) {
	stdout, _, err := runCommand(t, "5", "stddev")
	require.NoError(t, err)
	assert.Equal(t, "0\n", stdout)
}

func TestStddev_Stats(t *testing.T) {
	stdout, _, err := runCommand(t, "2 4 4 4 5 5 7 9", "stddev", "--stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "COUNT")
	assert.Contains(t, stdout, "MEAN")
	assert.Contains(t, stdout, "8")
}

func TestSampleStddev_AllEqual(t *testing.T) {
	// Variance of a constant sample must come out exactly 0, even when
	// the accumulated sums round unfavorably.
	n, mean, sd, err := sampleStddev(strings.NewReader("0.1 0.1 0.1 0.1"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.InDelta(t, 0.1, mean, 1e-12)
	assert.Equal(t, 0.0, sd)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "calc v"+Version+"\n", stdout)
}
