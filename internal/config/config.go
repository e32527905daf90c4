// Package config loads and persists the footprint configuration.
//
// Configuration lives in a YAML file, by default ~/.footprint/config.yaml.
// Resolution order, lowest to highest precedence: built-in defaults, the
// config file, FOOTPRINT_* environment variables, CLI flags (applied by the
// caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "FOOTPRINT_CONFIG"

// Environment variable overrides applied on top of the config file.
const (
	EnvDataDir    = "FOOTPRINT_DATA_DIR"
	EnvScalerPath = "FOOTPRINT_SCALER_PATH"
	EnvModelPath  = "FOOTPRINT_MODEL_PATH"
	EnvServerAddr = "FOOTPRINT_SERVER_ADDR"
	EnvLogLevel   = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat  = "FOOTPRINT_LOG_FORMAT"
)

// defaultShutdownTimeout bounds graceful HTTP shutdown.
const defaultShutdownTimeout = 10 * time.Second

// Config is the root configuration for the footprint CLI and server.
type Config struct {
	// DataDir holds the per-user history JSON files.
	DataDir string `yaml:"data_dir"`

	// Model locates the trained artifacts.
	Model ModelConfig `yaml:"model"`

	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// ModelConfig locates the serialized scaler and regressor artifacts.
type ModelConfig struct {
	ScalerPath string `yaml:"scaler_path"`
	ModelPath  string `yaml:"model_path"`
}

// ServerConfig configures the HTTP submission API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig configures log level, format, and optional file output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns the effective configuration: defaults, overlaid with the config
// file when one exists, overlaid with FOOTPRINT_* environment variables.
// A missing config file is not an error; a malformed one degrades to defaults
// so a broken file never locks the user out of `config init --force`.
func New() *Config {
	return NewFromPath(resolveConfigPath())
}

// NewFromPath builds the effective configuration from an explicit config file
// path, bypassing FOOTPRINT_CONFIG and the default location.
func NewFromPath(path string) *Config {
	cfg := Default()
	cfg.configPath = path

	if _, err := os.Stat(path); err == nil {
		// Overlay errors are deliberately swallowed here; config validate
		// reports them explicitly.
		_ = ShallowMergeYAML(cfg, path)
	}

	cfg.applyEnv()
	return cfg
}

// Default returns the built-in configuration, anchored under the user's home
// directory (or the working directory when home cannot be determined).
func Default() *Config {
	base := DefaultConfigDir()

	return &Config{
		DataDir: filepath.Join(base, "user_data"),
		Model: ModelConfig{
			ScalerPath: filepath.Join(base, "models", "scale.json"),
			ModelPath:  filepath.Join(base, "models", "model.json"),
		},
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		configPath: filepath.Join(base, "config.yaml"),
	}
}

// DefaultConfigDir returns ~/.footprint, or ".footprint" relative to the
// working directory when the home directory cannot be resolved.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".footprint"
	}
	return filepath.Join(home, ".footprint")
}

// resolveConfigPath honors FOOTPRINT_CONFIG before the default location.
func resolveConfigPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// applyEnv overlays FOOTPRINT_* environment variables onto cfg.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvScalerPath); v != "" {
		c.Model.ScalerPath = v
	}
	if v := os.Getenv(EnvModelPath); v != "" {
		c.Model.ModelPath = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// ConfigPath returns the path this configuration was (or would be) loaded from.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides where Save writes and Validate reads.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath, creating the parent
// directory as needed. The write is atomic via a temp file and rename.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(c.configPath)
	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}

	tmpPath := c.configPath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config temp file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, c.configPath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming config temp file: %w", renameErr)
	}

	return nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if c.DataDir == "" {
		problems = append(problems, "data_dir must not be empty")
	}
	if c.Model.ScalerPath == "" {
		problems = append(problems, "model.scaler_path must not be empty")
	}
	if c.Model.ModelPath == "" {
		problems = append(problems, "model.model_path must not be empty")
	}
	if c.Server.Addr == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		problems = append(problems, "server.shutdown_timeout must not be negative")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not console or json", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
