// Package config loads calc settings from a YAML file, environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults applied before any other source.
const (
	DefaultFormat = "%g"
	DefaultPrompt = "calc> "
)

// Config is the resolved calc configuration.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `koanf:"format"`
	// Prompt is the interactive prompt string.
	Prompt string `koanf:"prompt"`
	// HistoryFile stores interactive input history.
	HistoryFile string `koanf:"history_file"`
	// Verbose enables diagnostic logging to stderr.
	Verbose bool `koanf:"verbose"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > calc.yaml > calc.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("calc.yaml"); err == nil {
		return "calc.yaml"
	}
	if _, err := os.Stat("calc.yml"); err == nil {
		return "calc.yml"
	}
	return ""
}

// defaultHistoryFile places interactive history in the home directory, or
// the working directory when home is unknown.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".calc_history"
	}
	return filepath.Join(home, ".calc_history")
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":       DefaultFormat,
		"prompt":       DefaultPrompt,
		"history_file": defaultHistoryFile(),
		"verbose":      false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, if one exists
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment variables: CALC_HISTORY_FILE -> history_file
	if err := k.Load(env.Provider("CALC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CALC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
