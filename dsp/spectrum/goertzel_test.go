package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-multiband/internal/testutil"
)

func TestGoertzelMatchesDFT(t *testing.T) {
	sampleRate := 48000.0
	freq0 := 1000.0
	length := 1024
	sig := testutil.Sine(freq0, sampleRate, 1.0, length)

	g, err := NewGoertzel(freq0, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	g.ProcessBlock(sig)
	pwr := g.Power()

	var dft complex128

	for n, x := range sig {
		angle := -2 * math.Pi * freq0 / sampleRate * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}

	wantP := real(dft)*real(dft) + imag(dft)*imag(dft)
	if math.Abs(pwr-wantP) > 1e-7*wantP {
		t.Errorf("Power mismatch: got %v, want %v", pwr, wantP)
	}
}

func TestToneAmplitude(t *testing.T) {
	// 441 Hz at 44100 Hz completes exactly 441 cycles in one second.
	sig := testutil.Sine(441, 44100, 0.25, 44100)

	amp, err := ToneAmplitude(sig, 441, 44100)
	if err != nil {
		t.Fatalf("ToneAmplitude: %v", err)
	}
	if math.Abs(amp-0.25) > 1e-6 {
		t.Fatalf("amplitude = %v, want 0.25", amp)
	}

	off, err := ToneAmplitude(sig, 3000, 44100)
	if err != nil {
		t.Fatalf("ToneAmplitude: %v", err)
	}
	if off > 1e-6 {
		t.Fatalf("off-tone amplitude = %v, want ~0", off)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	g.ProcessBlock(testutil.Sine(1000, 48000, 1, 480))
	g.Reset()

	if g.Power() != 0 || g.Amplitude() != 0 {
		t.Fatalf("state not cleared: power=%v amplitude=%v", g.Power(), g.Amplitude())
	}
}

func TestGoertzelRejectsInvalidArgs(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
	}{
		{"zero rate", 100, 0},
		{"nan rate", 100, math.NaN()},
		{"negative freq", -1, 48000},
		{"above nyquist", 24001, 48000},
		{"inf freq", math.Inf(1), 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGoertzel(tt.freq, tt.rate); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
