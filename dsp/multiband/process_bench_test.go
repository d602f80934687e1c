package multiband

import (
	"context"
	"testing"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/cwbudde/algo-multiband/dsp/effects/dynamics"
	"github.com/cwbudde/algo-multiband/internal/testutil"
)

func BenchmarkProcessOneSecond(b *testing.B) {
	in := buffer.FromSlice(testutil.Noise(1, 4, 44100), 44100)
	p := dynamics.DefaultParams()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := Process(in, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcessChannelsStereo(b *testing.B) {
	chans := []*buffer.Buffer{
		buffer.FromSlice(testutil.Noise(1, 4, 44100), 44100),
		buffer.FromSlice(testutil.Noise(2, 4, 44100), 44100),
	}
	p := dynamics.DefaultParams()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := ProcessChannels(context.Background(), chans, p); err != nil {
			b.Fatal(err)
		}
	}
}
