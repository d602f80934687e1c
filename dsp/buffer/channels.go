package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/core"
)

// Deinterleave splits frame-interleaved samples (L R L R ...) into one
// Buffer per channel. len(data) must be a multiple of channels.
func Deinterleave(data []float64, channels, sampleRate int) ([]*Buffer, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be >= 1: %d", core.ErrInvalidInput, channels)
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			core.ErrInvalidInput, len(data), channels)
	}

	frames := len(data) / channels
	out := make([]*Buffer, channels)
	for ch := range out {
		out[ch] = New(frames, sampleRate)
	}

	for i, v := range data {
		out[i%channels].samples[i/channels] = v
	}

	return out, nil
}

// Interleave merges per-channel buffers into one frame-interleaved slice.
// All buffers must have equal length.
func Interleave(chans []*Buffer) ([]float64, error) {
	if len(chans) == 0 {
		return nil, fmt.Errorf("%w: no channels to interleave", core.ErrInvalidInput)
	}

	frames := chans[0].Len()
	for ch, b := range chans {
		if b.Len() != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d",
				core.ErrShapeMismatch, ch, b.Len(), frames)
		}
	}

	n := len(chans)
	out := make([]float64, frames*n)
	for ch, b := range chans {
		for i, v := range b.samples {
			out[i*n+ch] = v
		}
	}

	return out, nil
}
