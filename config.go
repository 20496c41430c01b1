package schedsim

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/schedsim/service/meta"
	"github.com/viant/schedsim/service/registry"
	"github.com/viant/schedsim/service/scheduler"
)

// Config is a serialisable representation of the simulator configuration.
// Fields left out of a loaded document keep their DefaultConfig values.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// GeneratorConfig controls random process attributes
type GeneratorConfig struct {
	registry.Ranges `json:",inline" yaml:",inline"`
	// Seed makes generated attributes reproducible, 0 seeds from the clock
	Seed int64 `json:"seed" yaml:"seed"`
}

type SchedulerConfig struct {
	Quantum int `json:"quantum" yaml:"quantum"`
}

type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Output is the span export file, stdout when empty
	Output string `json:"output" yaml:"output"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns a Config populated with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{Ranges: registry.DefaultRanges()},
		Scheduler: SchedulerConfig{Quantum: scheduler.DefaultQuantum},
		Log:       LogConfig{Level: "warn"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.Scheduler.Quantum <= 0 {
		return fmt.Errorf("scheduler.quantum must be > 0")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// LoadConfig reads a YAML configuration document from URL on top of DefaultConfig
func LoadConfig(ctx context.Context, metaService *meta.Service, URL string) (*Config, error) {
	if metaService == nil {
		metaService = meta.New(nil, "")
	}
	ret := DefaultConfig()
	if err := metaService.Load(ctx, URL, ret); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
