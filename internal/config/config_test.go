package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.NotEmpty(t, cfg.HistoryFile)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	content := "format: \"%.4f\"\nprompt: \">> \"\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "%.4f", cfg.Format)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.True(t, cfg.Verbose)
}

func TestLoad_ConfigFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	content := "prompt: \"yml> \"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc.yml"), []byte(content), 0o600))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "yml> ", cfg.Prompt)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: \"%.4f\"\n"), 0o600))
	t.Setenv("CALC_FORMAT", "%.2f")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "%.2f", cfg.Format)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CALC_FORMAT", "%.2f")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", DefaultFormat, "")
	flags.String("history-file", "", "")
	require.NoError(t, flags.Set("format", "%e"))
	require.NoError(t, flags.Set("history-file", "/tmp/hist"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "%e", cfg.Format)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
}

func TestLoad_UnchangedFlagIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CALC_PROMPT", "env> ")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prompt", DefaultPrompt, "")

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
}
