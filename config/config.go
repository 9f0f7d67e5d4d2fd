// Package config provides configuration loading and access for the app.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Stats  StatsConfig  `yaml:"stats"`
	Scene  SceneConfig  `yaml:"scene"`
	Export ExportConfig `yaml:"export"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	TargetFPS      int `yaml:"target_fps"`
	FramesInFlight int `yaml:"frames_in_flight"`
}

// StatsConfig holds counter collection settings.
type StatsConfig struct {
	Mode       string   `yaml:"mode"`        // "polling" or "continuous"
	IntervalMS float64  `yaml:"interval_ms"` // continuous sampling interval
	BufferSize int      `yaml:"buffer_size"` // 0 = derive from screen width
	Alpha      float64  `yaml:"alpha"`       // smoothing factor (0 = default)
	Requested  []string `yaml:"requested"`   // stat names to collect
}

// SceneConfig holds demo scene settings.
type SceneConfig struct {
	Particles int `yaml:"particles"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	FlushEverySec float64 `yaml:"flush_every_sec"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
