package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/window"
)

const normFloor = 1e-12

// STFT is a configured centered short-time Fourier transform.
type STFT struct {
	frameSize  int
	hopSize    int
	windowType window.Type
	pad        PadMode

	plan *algofft.Plan[complex128]

	windowCoeffs []float64
	windowSq     []float64

	frame    []float64
	spectrum []complex128
	timeBuf  []complex128
}

// New creates an STFT. Defaults: 2048-sample periodic Hann frames, hop 512,
// reflect padding.
func New(opts ...Option) (*STFT, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	hop := cfg.hop()
	if err := validate(cfg.frameSize, hop, cfg.pad); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.frameSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	coeffs := window.Generate(cfg.windowType, cfg.frameSize, window.WithPeriodic())
	if len(coeffs) != cfg.frameSize {
		return nil, fmt.Errorf("stft: window generation failed for size %d", cfg.frameSize)
	}

	return &STFT{
		frameSize:    cfg.frameSize,
		hopSize:      hop,
		windowType:   cfg.windowType,
		pad:          cfg.pad,
		plan:         plan,
		windowCoeffs: coeffs,
		windowSq:     window.Squared(coeffs),
		frame:        make([]float64, cfg.frameSize),
		spectrum:     make([]complex128, cfg.frameSize),
		timeBuf:      make([]complex128, cfg.frameSize),
	}, nil
}

// FrameSize returns the FFT frame size in samples.
func (s *STFT) FrameSize() int { return s.frameSize }

// HopSize returns the hop between frames in samples.
func (s *STFT) HopSize() int { return s.hopSize }

// WindowType returns the analysis/synthesis window.
func (s *STFT) WindowType() window.Type { return s.windowType }

// PadMode returns the edge padding mode.
func (s *STFT) PadMode() PadMode { return s.pad }

// NumBins returns FrameSize/2 + 1, the bin count of a real-input transform.
func (s *STFT) NumBins() int { return s.frameSize/2 + 1 }

// Forward transforms samples into a spectrogram. The input is not modified.
func (s *STFT) Forward(samples []float64) (*Spectrogram, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("stft: %w: sample sequence is empty", core.ErrInvalidInput)
	}

	half := s.frameSize / 2
	spec := NewSpectrogram(s.frameSize, s.hopSize, len(samples))
	frames := spec.NumFrames()
	padded := padSignal(samples, half, s.paddedLen(frames), s.pad)

	for t := range frames {
		pos := t * s.hopSize

		err := window.ApplyCoefficients(s.frame, padded[pos:pos+s.frameSize], s.windowCoeffs)
		if err != nil {
			return nil, fmt.Errorf("stft: frame %d: %w", t, err)
		}

		for i, v := range s.frame {
			s.spectrum[i] = complex(v, 0)
		}

		err = s.plan.Forward(s.spectrum, s.spectrum)
		if err != nil {
			return nil, fmt.Errorf("stft: forward FFT failed: %w", err)
		}

		for k := 0; k <= half; k++ {
			spec.Bins[k][t] = s.spectrum[k]
		}
	}

	return spec, nil
}

// Inverse reconstructs Length samples from spec by windowed overlap-add.
// spec must have been framed with this transform's frame and hop size.
// The spectrogram is not modified.
func (s *STFT) Inverse(spec *Spectrogram) ([]float64, error) {
	if err := spec.CheckShape(s.frameSize, s.hopSize); err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	half := s.frameSize / 2
	frames := spec.NumFrames()
	total := s.paddedLen(frames)
	sum := make([]float64, total)
	norm := make([]float64, total)

	for t := range frames {
		for k := 0; k <= half; k++ {
			s.spectrum[k] = spec.Bins[k][t]
		}

		s.spectrum[0] = complex(real(s.spectrum[0]), 0)
		s.spectrum[half] = complex(real(s.spectrum[half]), 0)
		for k := 1; k < half; k++ {
			v := s.spectrum[k]
			s.spectrum[s.frameSize-k] = complex(real(v), -imag(v))
		}

		err := s.plan.Inverse(s.timeBuf, s.spectrum)
		if err != nil {
			return nil, fmt.Errorf("stft: inverse FFT failed: %w", err)
		}

		pos := t * s.hopSize
		for i := range s.frameSize {
			sum[pos+i] += real(s.timeBuf[i]) * s.windowCoeffs[i]
			norm[pos+i] += s.windowSq[i]
		}
	}

	out := make([]float64, spec.Length)
	for i := range out {
		v := sum[half+i]
		if n := norm[half+i]; n > normFloor {
			v /= n
		}
		out[i] = v
	}

	return out, nil
}

// paddedLen is the signal length that holds frames full frames.
func (s *STFT) paddedLen(frames int) int {
	return (frames-1)*s.hopSize + s.frameSize
}

func validate(frameSize, hop int, pad PadMode) error {
	if frameSize < minFrameSize || !isPowerOf2(frameSize) {
		return fmt.Errorf("stft: %w: frame size must be power-of-two and >= %d: %d",
			core.ErrInvalidInput, minFrameSize, frameSize)
	}

	if hop <= 0 || hop >= frameSize {
		return fmt.Errorf("stft: %w: hop size must be in [1, %d): %d", core.ErrInvalidInput, frameSize, hop)
	}

	switch pad {
	case PadReflect, PadZero:
	default:
		return fmt.Errorf("stft: %w: pad mode invalid: %d", core.ErrInvalidInput, pad)
	}

	return nil
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
