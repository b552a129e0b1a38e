package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/flightfare/farecast/core/metrics"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig   `json:"server"`
	Artifacts ArtifactConfig `json:"artifacts"`
	Metrics   metrics.Config `json:"metrics"`
	Logging   LoggingConfig  `json:"logging"`
}

// ServerConfig holds the form/API listener settings.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// ArtifactConfig locates the trained artifacts.
type ArtifactConfig struct {
	// Dir contains model.json, scaler.json and encoders.json. Relative
	// paths resolve against the process working directory.
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *ArtifactConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "artifacts"
	}
}

// LoggingConfig controls the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is one zerolog understands.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}

// Load reads the configuration file (yaml or json) and applies
// FARECAST_-prefixed environment overrides, with "__" separating
// nesting levels (FARECAST_SERVER__ADDR=:9000).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("FARECAST_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "farecast_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Artifacts.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
