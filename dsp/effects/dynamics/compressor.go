package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/band"
	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/spectrum"
	"github.com/cwbudde/algo-multiband/dsp/stft"
)

// BandCompressor computes and applies per-band gains to spectrograms.
//
// A BandCompressor keeps a scratch column for energy measurement and is not
// safe for concurrent use.
type BandCompressor struct {
	params Params
	column []complex128
}

// NewBandCompressor validates p and returns a compressor using it.
func NewBandCompressor(p Params) (*BandCompressor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &BandCompressor{params: p}, nil
}

// Params returns the compressor settings.
func (c *BandCompressor) Params() Params {
	return c.params
}

// Energy returns the mean bin magnitude of band b at frame. An empty band
// has energy 0.
func (c *BandCompressor) Energy(s *stft.Spectrogram, b band.Band, frame int) float64 {
	if b.Empty() {
		return 0
	}

	c.column = s.Column(c.column, frame, b.Start, b.End)
	return spectrum.MeanMagnitude(c.column)
}

// Gains computes the gain curve for s split into bands. The bands must
// partition the spectrogram's bins.
func (c *BandCompressor) Gains(s *stft.Spectrogram, bands []band.Band) (GainCurve, error) {
	if err := checkInputs(s, bands); err != nil {
		return nil, err
	}

	frames := s.NumFrames()
	curve := make(GainCurve, len(bands))
	for i, b := range bands {
		row := make([]float64, frames)
		for t := range row {
			row[t] = Gain(c.Energy(s, b, t), c.params.Threshold, c.params.Ratio)
		}
		curve[i] = row
	}

	return curve, nil
}

// Apply returns a copy of s with every bin scaled by the gain of its band at
// that frame, together with the gain curve used. s is not modified.
func (c *BandCompressor) Apply(s *stft.Spectrogram, bands []band.Band) (*stft.Spectrogram, GainCurve, error) {
	curve, err := c.Gains(s, bands)
	if err != nil {
		return nil, nil, err
	}

	out := s.Clone()
	for i, b := range bands {
		gains := curve[i]
		for k := b.Start; k < b.End; k++ {
			row := out.Bins[k]
			for t, g := range gains {
				if g == 1 {
					continue
				}
				v := row[t]
				row[t] = complex(real(v)*g, imag(v)*g)
			}
		}
	}

	return out, curve, nil
}

func checkInputs(s *stft.Spectrogram, bands []band.Band) error {
	if s == nil {
		return fmt.Errorf("dynamics: %w: spectrogram is nil", core.ErrInvalidInput)
	}

	if err := band.CheckPartition(bands, s.NumBins()); err != nil {
		return fmt.Errorf("dynamics: %w", err)
	}

	frames := s.NumFrames()
	for k, row := range s.Bins {
		if len(row) != frames {
			return fmt.Errorf("dynamics: %w: bin %d has %d frames, want %d",
				core.ErrShapeMismatch, k, len(row), frames)
		}
	}

	return nil
}
