package multiband

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/effects/dynamics"
	"golang.org/x/sync/errgroup"
)

// ProcessChannels runs Process on every channel concurrently. Channels are
// independent; there is no cross-channel linking. All channels must share
// one sample rate. The first failure cancels the remaining work and is
// returned; on success the outputs are in channel order.
func ProcessChannels(ctx context.Context, channels []*buffer.Buffer, p dynamics.Params, opts ...Option) ([]*buffer.Buffer, error) {
	cfg := applyOptions(opts)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("multiband: %w", err)
	}

	if len(channels) == 0 {
		return nil, fmt.Errorf("multiband: %w: no channels", core.ErrInvalidInput)
	}

	for ch, b := range channels {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("multiband: channel %d: %w", ch, err)
		}
		if b.SampleRate() != channels[0].SampleRate() {
			return nil, fmt.Errorf("multiband: %w: channel %d sample rate %d differs from %d",
				core.ErrInvalidInput, ch, b.SampleRate(), channels[0].SampleRate())
		}
	}

	out := make([]*buffer.Buffer, len(channels))
	g, ctx := errgroup.WithContext(ctx)

	for ch, b := range channels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pr, err := newProcessor(p, cfg)
			if err != nil {
				return err
			}
			pr.log = cfg.logger.WithField("channel", ch)

			res, _, err := pr.run(ctx, b)
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}

			out[ch] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
