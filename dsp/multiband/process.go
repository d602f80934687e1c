package multiband

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/band"
	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/effects/dynamics"
	"github.com/cwbudde/algo-multiband/dsp/stft"
	"github.com/sirupsen/logrus"
)

// Process applies spectral multiband dynamics to in and returns a new buffer
// with the same length and sample rate. in is not modified.
//
// Parameters are validated before the input, so a bad parameter set is
// reported as core.ErrInvalidConfiguration even when in is also unusable.
func Process(in *buffer.Buffer, p dynamics.Params, opts ...Option) (*buffer.Buffer, error) {
	out, _, err := ProcessWithGains(in, p, opts...)
	return out, err
}

// ProcessWithGains is Process that also returns the gain curve applied,
// indexed [band][frame].
func ProcessWithGains(in *buffer.Buffer, p dynamics.Params, opts ...Option) (*buffer.Buffer, dynamics.GainCurve, error) {
	cfg := applyOptions(opts)

	pr, err := newProcessor(p, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, nil, fmt.Errorf("multiband: %w", err)
	}

	return pr.run(context.Background(), in)
}

// processor owns the per-goroutine state of one pipeline.
type processor struct {
	transform  *stft.STFT
	compressor *dynamics.BandCompressor
	numBands   int
	log        logrus.FieldLogger
}

func newProcessor(p dynamics.Params, cfg config) (*processor, error) {
	comp, err := dynamics.NewBandCompressor(p)
	if err != nil {
		return nil, fmt.Errorf("multiband: %w", err)
	}

	tr, err := stft.New(cfg.transform...)
	if err != nil {
		return nil, fmt.Errorf("multiband: %w", err)
	}

	return &processor{
		transform:  tr,
		compressor: comp,
		numBands:   p.NumBands,
		log:        cfg.logger,
	}, nil
}

// run assumes in has been validated.
func (pr *processor) run(ctx context.Context, in *buffer.Buffer) (*buffer.Buffer, dynamics.GainCurve, error) {
	spec, err := pr.transform.Forward(in.Samples())
	if err != nil {
		return nil, nil, fmt.Errorf("multiband: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	bins := spec.NumBins()
	if band.Degenerate(bins, pr.numBands) {
		pr.log.WithFields(logrus.Fields{
			"bands": pr.numBands,
			"bins":  bins,
		}).Warn("band count exceeds bin count, trailing bands are empty")
	}

	bands, err := band.Split(bins, pr.numBands)
	if err != nil {
		return nil, nil, fmt.Errorf("multiband: %w", err)
	}

	shaped, curve, err := pr.compressor.Apply(spec, bands)
	if err != nil {
		return nil, nil, fmt.Errorf("multiband: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	samples, err := pr.transform.Inverse(shaped)
	if err != nil {
		return nil, nil, fmt.Errorf("multiband: %w", err)
	}

	if idx := core.FirstNonFinite(samples); idx >= 0 {
		return nil, nil, fmt.Errorf("multiband: %w: output sample %d is %v", core.ErrNonFinite, idx, samples[idx])
	}

	pr.log.WithFields(logrus.Fields{
		"frames":   spec.NumFrames(),
		"bins":     bins,
		"bands":    len(bands),
		"active":   curve.Active(),
		"max_gain": curve.Max(),
	}).Debug("multiband dynamics applied")

	return buffer.FromSlice(samples, in.SampleRate()), curve, nil
}
