package stft

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-multiband/dsp/window"
)

const (
	// DefaultFrameSize is the analysis window length in samples.
	DefaultFrameSize = 2048
	minFrameSize     = 16
)

// PadMode selects how the signal is extended by FrameSize/2 at each end.
type PadMode int

const (
	// PadReflect mirrors the signal about its first and last sample.
	PadReflect PadMode = iota
	// PadZero extends the signal with silence.
	PadZero
)

// String returns the lowercase mode name.
func (m PadMode) String() string {
	switch m {
	case PadReflect:
		return "reflect"
	case PadZero:
		return "zero"
	default:
		return fmt.Sprintf("pad(%d)", int(m))
	}
}

// ParsePadMode maps "reflect" or "zero" (case-insensitive) to a PadMode.
func ParsePadMode(name string) (PadMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reflect":
		return PadReflect, nil
	case "zero", "constant":
		return PadZero, nil
	default:
		return PadReflect, fmt.Errorf("unknown pad mode %q", name)
	}
}

// Option configures an STFT.
type Option func(*config)

type config struct {
	frameSize  int
	hopSize    int
	hopSet     bool
	windowType window.Type
	pad        PadMode
}

func defaultConfig() config {
	return config{
		frameSize:  DefaultFrameSize,
		windowType: window.TypeHann,
		pad:        PadReflect,
	}
}

// hop resolves the hop size, defaulting to a quarter frame.
func (c config) hop() int {
	if c.hopSet {
		return c.hopSize
	}
	return max(c.frameSize/4, 1)
}

// WithFrameSize sets the FFT frame size. It must be a power of two >= 16.
func WithFrameSize(size int) Option {
	return func(c *config) {
		c.frameSize = size
	}
}

// WithHopSize sets the hop between frames. It must be in [1, FrameSize).
// Without this option the hop is FrameSize/4.
func WithHopSize(hop int) Option {
	return func(c *config) {
		c.hopSize = hop
		c.hopSet = true
	}
}

// WithWindow sets the analysis and synthesis window. Default is Hann.
// The periodic form is always used.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// WithPadMode sets the edge padding. Default is PadReflect.
func WithPadMode(m PadMode) Option {
	return func(c *config) {
		c.pad = m
	}
}
