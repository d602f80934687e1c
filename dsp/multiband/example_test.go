package multiband_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/cwbudde/algo-multiband/dsp/effects/dynamics"
	"github.com/cwbudde/algo-multiband/dsp/multiband"
)

func ExampleProcess() {
	const fs = 44100

	samples := make([]float64, fs/2)
	for i := range samples {
		samples[i] = 0.25 * math.Sin(2*math.Pi*1000*float64(i)/fs)
	}

	out, err := multiband.Process(buffer.FromSlice(samples, fs), dynamics.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d samples at %d Hz, peak %.2f\n", out.Len(), out.SampleRate(), out.Peak())
	// Output:
	// 22050 samples at 44100 Hz, peak 0.25
}
