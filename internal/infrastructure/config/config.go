// Package config loads tool configuration from defaults, an optional JSON
// config file, and OPEN_TASKS_* environment overrides, in that priority
// order (lowest first).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
)

// Config is the resolved run configuration.
type Config struct {
	// StateDir is the project state directory; run outputs live under
	// StateDir/outputs.
	StateDir string

	// LogLevel is the default output level for a run. The --verbose and
	// --quiet flags override it per invocation.
	LogLevel output.Level

	// TokenPolicy decides whether re-registering a token overwrites the
	// registry entry or fails the command.
	TokenPolicy reference.DuplicatePolicy

	// DefaultTimeout bounds each command's execution when the pipeline
	// step does not set its own. Zero disables the bound.
	DefaultTimeout time.Duration
}

// fileConfig is the JSON shape of the config file.
type fileConfig struct {
	StateDir       string `json:"state_dir,omitempty"`
	LogLevel       string `json:"log_level,omitempty"`
	TokenPolicy    string `json:"token_policy,omitempty"`
	DefaultTimeout string `json:"default_timeout,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		StateDir:    filepath.Join(home, ".open-tasks"),
		LogLevel:    output.Summary,
		TokenPolicy: reference.OverwriteDuplicates,
	}
}

// ConfigFilePath returns the config file location: OPEN_TASKS_CONFIG when
// set, otherwise <default state dir>/config.json.
func ConfigFilePath() string {
	if path := os.Getenv("OPEN_TASKS_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(DefaultConfig().StateDir, "config.json")
}

// Load resolves the configuration: defaults, then the config file when
// present, then environment overrides. A missing file is not an error; a
// malformed one is.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := applyFile(cfg, ConfigFilePath()); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return applyValues(cfg, fc.StateDir, fc.LogLevel, fc.TokenPolicy, fc.DefaultTimeout)
}

func applyEnv(cfg *Config) error {
	return applyValues(cfg,
		os.Getenv("OPEN_TASKS_STATE_DIR"),
		os.Getenv("OPEN_TASKS_LOG_LEVEL"),
		os.Getenv("OPEN_TASKS_TOKEN_POLICY"),
		os.Getenv("OPEN_TASKS_TIMEOUT"),
	)
}

func applyValues(cfg *Config, stateDir, logLevel, tokenPolicy, timeout string) error {
	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if logLevel != "" {
		level, err := output.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if tokenPolicy != "" {
		policy, err := reference.ParsePolicy(tokenPolicy)
		if err != nil {
			return err
		}
		cfg.TokenPolicy = policy
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("parsing default timeout: %w", err)
		}
		cfg.DefaultTimeout = d
	}
	return nil
}

// OutputsRoot returns the directory run output directories are created in.
func (c *Config) OutputsRoot() string {
	return filepath.Join(c.StateDir, "outputs")
}

// Settings converts the configuration into the read-only form commands see.
func (c *Config) Settings() command.Settings {
	return command.Settings{
		StateDir:       c.StateDir,
		DefaultTimeout: c.DefaultTimeout,
	}
}
