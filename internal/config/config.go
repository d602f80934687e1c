package config

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-multiband/dsp/effects/dynamics"
	"github.com/cwbudde/algo-multiband/dsp/multiband"
	"github.com/cwbudde/algo-multiband/dsp/stft"
	"github.com/cwbudde/algo-multiband/dsp/window"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is the file written when no output path is given.
const DefaultOutputPath = "processed_audio.wav"

// Config represents a complete processing preset
type Config struct {
	Dynamics  DynamicsConfig  `yaml:"dynamics"`
	Transform TransformConfig `yaml:"transform"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DynamicsConfig contains the band split and gain law
type DynamicsConfig struct {
	NumBands  int     `yaml:"num_bands"`
	Threshold float64 `yaml:"threshold"`
	Ratio     float64 `yaml:"ratio"`
}

// TransformConfig contains STFT settings
type TransformConfig struct {
	FrameSize int    `yaml:"frame_size"`
	HopSize   int    `yaml:"hop_size"` // 0 = frame_size/4
	Window    string `yaml:"window"`
	Pad       string `yaml:"pad"`
}

// OutputConfig contains encoder settings for the processed file
type OutputConfig struct {
	Path      string `yaml:"path"`
	BitDepth  int    `yaml:"bit_depth"`
	Normalize bool   `yaml:"normalize"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in preset.
func Default() *Config {
	p := dynamics.DefaultParams()

	return &Config{
		Dynamics: DynamicsConfig{
			NumBands:  p.NumBands,
			Threshold: p.Threshold,
			Ratio:     p.Ratio,
		},
		Transform: TransformConfig{
			FrameSize: stft.DefaultFrameSize,
			Window:    window.TypeHann.String(),
			Pad:       stft.PadReflect.String(),
		},
		Output: OutputConfig{
			Path:     DefaultOutputPath,
			BitDepth: 16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML preset on top of the defaults, so sections and fields
// missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Dynamics.Validate(); err != nil {
		return fmt.Errorf("dynamics config: %w", err)
	}

	if err := c.Transform.Validate(); err != nil {
		return fmt.Errorf("transform config: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates the dynamics parameters
func (d *DynamicsConfig) Validate() error {
	return d.Params().Validate()
}

// Params converts the section to processing parameters.
func (d *DynamicsConfig) Params() dynamics.Params {
	return dynamics.Params{
		NumBands:  d.NumBands,
		Threshold: d.Threshold,
		Ratio:     d.Ratio,
	}
}

// Validate validates transform configuration
func (t *TransformConfig) Validate() error {
	if t.FrameSize < 16 || t.FrameSize&(t.FrameSize-1) != 0 {
		return fmt.Errorf("frame_size must be a power of two >= 16, got %d", t.FrameSize)
	}

	if t.HopSize < 0 || t.HopSize >= t.FrameSize {
		return fmt.Errorf("hop_size must be 0 (auto) or between 1 and %d, got %d", t.FrameSize-1, t.HopSize)
	}

	if _, err := window.ParseType(t.Window); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	if _, err := stft.ParsePadMode(t.Pad); err != nil {
		return fmt.Errorf("pad: %w", err)
	}

	return nil
}

// Validate validates output configuration
func (o *OutputConfig) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	switch o.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("bit_depth must be 16, 24 or 32, got %d", o.BitDepth)
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}

// Params returns the dynamics parameters of the preset.
func (c *Config) Params() dynamics.Params {
	return c.Dynamics.Params()
}

// Options returns pipeline options for the transform section and logger.
// The preset must have been validated.
func (c *Config) Options(logger logrus.FieldLogger) []multiband.Option {
	opts := []multiband.Option{multiband.WithFrameSize(c.Transform.FrameSize)}

	if c.Transform.HopSize > 0 {
		opts = append(opts, multiband.WithHopSize(c.Transform.HopSize))
	}

	if w, err := window.ParseType(c.Transform.Window); err == nil {
		opts = append(opts, multiband.WithWindow(w))
	}

	if pad, err := stft.ParsePadMode(c.Transform.Pad); err == nil {
		opts = append(opts, multiband.WithPadMode(pad))
	}

	if logger != nil {
		opts = append(opts, multiband.WithLogger(logger))
	}

	return opts
}
