package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	defaultMode      = "mainnet"
	defaultOutput    = OutputJSON
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultTimeout   = 30

	configFile = "config.json"
)

var (
	networkModes = []string{"mainnet", "testnet"}
	outputs      = []string{OutputJSON, OutputYAML, OutputTable}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.kaiascan.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".kaiascan")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if err := oneOf("network_mode", c.NetworkMode, networkModes); err != nil {
		return err
	}
	if err := oneOf("output", c.Output, outputs); err != nil {
		return err
	}
	if err := oneOf("log_level", c.LogLevel, logLevels); err != nil {
		return err
	}
	if err := oneOf("log_format", c.LogFormat, logFormats); err != nil {
		return err
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be >= 0, got %d", c.TimeoutSeconds)
	}
	return nil
}

// SetNetworkMode sets the persisted network after validating it.
func (c *Config) SetNetworkMode(mode string) error {
	mode = strings.ToLower(mode)
	if err := oneOf("network_mode", mode, networkModes); err != nil {
		return err
	}
	c.NetworkMode = mode
	return nil
}

// SetOutput sets the default output format.
func (c *Config) SetOutput(format string) error {
	format = strings.ToLower(format)
	if err := oneOf("output", format, outputs); err != nil {
		return err
	}
	c.Output = format
	return nil
}

// SetLogLevel sets the default log level.
func (c *Config) SetLogLevel(level string) error {
	level = strings.ToLower(level)
	if err := oneOf("log_level", level, logLevels); err != nil {
		return err
	}
	c.LogLevel = level
	return nil
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		NetworkMode:    defaultMode,
		Output:         defaultOutput,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		TimeoutSeconds: defaultTimeout,
		configDir:      dir,
	}
}

func oneOf(field, v string, allowed []string) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return fmt.Errorf("%s: %q is not one of %s", field, v, strings.Join(allowed, ", "))
}
