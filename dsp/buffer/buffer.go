package buffer

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Buffer pairs mono samples with their sample rate in Hz.
// DSP functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples    []float64
	sampleRate int
}

// New returns a zero-filled Buffer of the given length.
func New(length, sampleRate int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length), sampleRate: sampleRate}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64, sampleRate int) *Buffer {
	return &Buffer{samples: s, sampleRate: sampleRate}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Duration returns the playback length. Zero for a non-positive sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.samples)) / float64(b.sampleRate) * float64(time.Second))
}

// Validate checks that the buffer is usable as processing input.
func (b *Buffer) Validate() error {
	if b == nil || len(b.samples) == 0 {
		return fmt.Errorf("%w: sample buffer is empty", core.ErrInvalidInput)
	}
	if b.sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", core.ErrInvalidInput, b.sampleRate)
	}
	if idx := core.FirstNonFinite(b.samples); idx >= 0 {
		return fmt.Errorf("%w: sample %d is not finite: %v", core.ErrInvalidInput, idx, b.samples[idx])
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, sampleRate: b.sampleRate}
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, v := range b.samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Scale multiplies every sample by gain in place.
func (b *Buffer) Scale(gain float64) {
	if len(b.samples) == 0 {
		return
	}
	vecmath.ScaleBlock(b.samples, b.samples, gain)
}

// Clip limits samples to [-limit, limit] in place and returns how many
// samples were changed.
func (b *Buffer) Clip(limit float64) int {
	limit = math.Abs(limit)
	clipped := 0
	for i, v := range b.samples {
		switch {
		case v > limit:
			b.samples[i] = limit
			clipped++
		case v < -limit:
			b.samples[i] = -limit
			clipped++
		}
	}
	return clipped
}
