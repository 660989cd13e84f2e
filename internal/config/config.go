package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "subscope.yaml"

// Config represents the top-level subscope.yaml configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Data      DataConfig      `yaml:"data"`
	Detection DetectionConfig `yaml:"detection"`
}

// AnthropicConfig controls classifier calls. The API key itself is never
// written to the file; it comes from the environment variable named here.
type AnthropicConfig struct {
	APIKeyEnv      string `yaml:"api_key_env"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	BatchSize      int    `yaml:"batch_size"`
}

// Timeout returns the per-call classifier timeout.
func (a AnthropicConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// DataConfig locates local state.
type DataConfig struct {
	Dir string `yaml:"dir"` // merchant cache and overrides database
}

// DetectionConfig tunes the recurrence analysis.
type DetectionConfig struct {
	MinOccurrences    int     `yaml:"min_occurrences"`
	ConsistencyCutoff float64 `yaml:"consistency_cutoff"`
}

// APIKey resolves the classifier API key from the configured environment
// variable. Empty means no classifier: the pipeline runs in degraded mode.
func (c *Config) APIKey() string {
	return os.Getenv(c.Anthropic.APIKeyEnv)
}

// Load reads a subscope.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Anthropic.APIKeyEnv == "" {
		c.Anthropic.APIKeyEnv = "ANTHROPIC_API_KEY"
	}
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = "claude-sonnet-4-5-20250929"
	}
	if c.Anthropic.TimeoutSeconds <= 0 {
		c.Anthropic.TimeoutSeconds = 60
	}
	if c.Anthropic.BatchSize <= 0 {
		c.Anthropic.BatchSize = 15
	}
	if c.Data.Dir == "" {
		c.Data.Dir = ".subscope"
	}
	if c.Detection.MinOccurrences <= 0 {
		c.Detection.MinOccurrences = 2
	}
	if c.Detection.ConsistencyCutoff <= 0 {
		c.Detection.ConsistencyCutoff = 0.80
	}
}
