package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/core"
)

const (
	// Default dynamics parameters
	DefaultNumBands  = 30
	DefaultThreshold = 80.0
	DefaultRatio     = 60.0

	// baseGain is the gain applied as soon as a band exceeds the threshold.
	baseGain = 10.0
)

// Params holds the band count and gain law settings.
type Params struct {
	NumBands  int     // Number of frequency bands, >= 1
	Threshold float64 // Energy above which gain is applied, > 0
	Ratio     float64 // Gain reached at twice the threshold, >= 0
}

// DefaultParams returns {30, 80, 60}.
func DefaultParams() Params {
	return Params{
		NumBands:  DefaultNumBands,
		Threshold: DefaultThreshold,
		Ratio:     DefaultRatio,
	}
}

// Validate reports parameters outside their domain as
// core.ErrInvalidConfiguration.
func (p Params) Validate() error {
	if p.NumBands < 1 {
		return fmt.Errorf("dynamics: %w: band count must be >= 1: %d", core.ErrInvalidConfiguration, p.NumBands)
	}

	if !core.IsFinitePositive(p.Threshold) {
		return fmt.Errorf("dynamics: %w: threshold must be positive and finite: %v",
			core.ErrInvalidConfiguration, p.Threshold)
	}

	if !core.IsFinite(p.Ratio) || p.Ratio < 0 {
		return fmt.Errorf("dynamics: %w: ratio must be finite and >= 0: %v", core.ErrInvalidConfiguration, p.Ratio)
	}

	return nil
}
