package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLogPath is where the bot writes its trade log when nothing else is
// configured.
const DefaultLogPath = "trade_log.json"

// Config carries the file locations the tradelog CLI works with. The
// cleaning thresholds themselves are fixed policy and deliberately absent.
type Config struct {
	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig locates the trade log and its backups.
type LogConfig struct {
	// Path is the JSON trade log the bot appends to.
	Path string `json:"path" yaml:"path"`

	// BackupDir receives the pre-clean backup copies. Empty means the log's
	// own directory.
	BackupDir string `json:"backup_dir,omitempty" yaml:"backup_dir,omitempty"`
}

// LoadFromFile loads configuration from a file. The content may be YAML or
// JSON; YAML is tried first.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration to path, as YAML for .yaml/.yml and
// indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Log.Path == "" {
		return fmt.Errorf("log.path is required")
	}
	return nil
}

// Default returns a configuration pointing at the conventional log location.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path: DefaultLogPath,
		},
	}
}
