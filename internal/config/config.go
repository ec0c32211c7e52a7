// Package config provides configuration types, defaults, and persistence
// for placer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration options for placer.
type Config struct {
	// LibraryPath is the package library YAML file loaded at startup.
	// Empty means the built-in standard library only.
	LibraryPath string `mapstructure:"library_path" yaml:"library_path"`

	// AutoReload re-reads the library file when it changes on disk.
	AutoReload bool `mapstructure:"auto_reload" yaml:"auto_reload"`

	// AutoReloadDebounce is the watcher debounce interval in milliseconds.
	AutoReloadDebounce int `mapstructure:"auto_reload_debounce" yaml:"auto_reload_debounce"`

	// FlipStyleRotateFirst selects whether back-side components are
	// rotated before mirroring (true) or mirrored before rotating.
	FlipStyleRotateFirst bool `mapstructure:"flip_style_rotate_first" yaml:"flip_style_rotate_first"`

	Debug   bool          `mapstructure:"debug" yaml:"debug"`
	LogPath string        `mapstructure:"log_path" yaml:"log_path"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// TracingConfig holds trace export configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp". Default: "file".
	Exporter string `mapstructure:"exporter" yaml:"exporter"`

	// FilePath is the output file for the "file" exporter.
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0). Default: 1.0.
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:           true,
		AutoReloadDebounce:   1000,
		FlipStyleRotateFirst: false,
		Debug:                false,
		LogPath:              DefaultLogPath(),
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultLogPath returns ~/.config/placer/placer.log, or a file in the
// working directory if the home directory is unavailable.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "placer.log"
	}
	return filepath.Join(home, ".config", "placer", "placer.log")
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/placer/traces/traces.jsonl or empty string if home
// dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "placer", "traces", "traces.jsonl")
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.AutoReloadDebounce < 0 {
		return fmt.Errorf("auto_reload_debounce must be >= 0, got %d", c.AutoReloadDebounce)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be in 0..1, got %g", c.Tracing.SampleRate)
	}
	switch c.Tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter: invalid value %q", c.Tracing.Exporter)
	}
	return nil
}
