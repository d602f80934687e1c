package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvNumBands  = "MBDYN_NUM_BANDS"
	EnvThreshold = "MBDYN_THRESHOLD"
	EnvRatio     = "MBDYN_RATIO"
	EnvFrameSize = "MBDYN_FRAME_SIZE"
	EnvHopSize   = "MBDYN_HOP_SIZE"
	EnvWindow    = "MBDYN_WINDOW"
	EnvPad       = "MBDYN_PAD"
	EnvLogLevel  = "MBDYN_LOG_LEVEL"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Environ returns a lookup over the process environment, falling back to the
// given .env files. Variables already set in the process win over file values,
// and earlier files win over later ones.
func Environ(files ...string) (LookupFunc, error) {
	fromFiles := map[string]string{}

	for i := len(files) - 1; i >= 0; i-- {
		vals, err := godotenv.Read(files[i])
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", files[i], err)
		}
		for k, v := range vals {
			fromFiles[k] = v
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields with MBDYN_* variables found by lookup and
// re-validates the result.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvNumBands, &c.Dynamics.NumBands},
		{EnvFrameSize, &c.Transform.FrameSize},
		{EnvHopSize, &c.Transform.HopSize},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvThreshold, &c.Dynamics.Threshold},
		{EnvRatio, &c.Dynamics.Ratio},
	}
	for _, e := range floats {
		if v, ok := lookup(e.key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = f
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvWindow, &c.Transform.Window},
		{EnvPad, &c.Transform.Pad},
		{EnvLogLevel, &c.Logging.Level},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok {
			*e.dst = v
		}
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("config validation failed after environment overrides: %w", err)
	}

	return nil
}
