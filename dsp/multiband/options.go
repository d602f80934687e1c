package multiband

import (
	"io"

	"github.com/cwbudde/algo-multiband/dsp/stft"
	"github.com/cwbudde/algo-multiband/dsp/window"
	"github.com/sirupsen/logrus"
)

// Option configures a pipeline run.
type Option func(*config)

type config struct {
	transform []stft.Option
	logger    logrus.FieldLogger
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	return cfg
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithFrameSize sets the STFT frame size (default 2048).
func WithFrameSize(size int) Option {
	return func(c *config) {
		c.transform = append(c.transform, stft.WithFrameSize(size))
	}
}

// WithHopSize sets the STFT hop (default frame size / 4).
func WithHopSize(hop int) Option {
	return func(c *config) {
		c.transform = append(c.transform, stft.WithHopSize(hop))
	}
}

// WithWindow sets the analysis and synthesis window (default Hann).
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.transform = append(c.transform, stft.WithWindow(t))
	}
}

// WithPadMode sets the edge padding (default reflect).
func WithPadMode(m stft.PadMode) Option {
	return func(c *config) {
		c.transform = append(c.transform, stft.WithPadMode(m))
	}
}

// WithLogger routes pipeline diagnostics to l. Without it nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
