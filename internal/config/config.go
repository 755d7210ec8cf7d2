// Package config loads the host configuration file and sets up logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with YAML support for "5s" style values.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the host settings.
type Config struct {
	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"log"`

	Script struct {
		// Timeout bounds a single script node evaluation.
		Timeout Duration `yaml:"timeout"`
	} `yaml:"script"`

	Mesh struct {
		// Cells is the marching cubes resolution for mesh export.
		Cells int `yaml:"cells"`
	} `yaml:"mesh"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Script.Timeout = Duration(5 * time.Second)
	c.Mesh.Cells = 200
	return c
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// SetupLogging installs the default slog handler at the configured level.
func (c *Config) SetupLogging() error {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
