package synchro

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a synchronizer in a form that can live next to the rest
// of an application's YAML configuration. Time functions and callbacks are
// code, not configuration, and are registered on the built synchronizer.
//
//	min_gap: 100
//	streams:
//	  - name: imu
//	  - name: gps
type Config struct {
	// MinGap is the minimum time distance between consecutive sets, in the
	// unit of the time functions.
	MinGap int64 `yaml:"min_gap"`
	// Streams defines the stream count and their names, in stream order.
	Streams []StreamConfig `yaml:"streams"`
}

// StreamConfig names one stream.
type StreamConfig struct {
	Name string `yaml:"name"`
}

// ParseConfig decodes and validates a YAML synchronizer configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML synchronizer configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the configuration for structural problems.
func (c Config) Validate() error {
	if len(c.Streams) == 0 {
		return errors.New("config: at least one stream required")
	}
	if c.MinGap < 0 {
		return fmt.Errorf("config: min_gap must be non-negative, got %d", c.MinGap)
	}
	for i, s := range c.Streams {
		if s.Name == "" {
			return fmt.Errorf("config: stream %d has no name", i)
		}
	}
	return nil
}

// Build constructs a synchronizer from the configuration.
func (c Config) Build() *Synchronizer {
	names := make([]string, len(c.Streams))
	for i, s := range c.Streams {
		names[i] = s.Name
	}
	return New(len(c.Streams)).
		WithMinGap(c.MinGap).
		WithStreamNames(names...)
}
