package dynamics

import (
	"math"
	"testing"
)

func TestGain(t *testing.T) {
	tests := []struct {
		name                     string
		energy, threshold, ratio float64
		want                     float64
	}{
		{"silence", 0, 80, 60, 1},
		{"below", 79.9, 80, 60, 1},
		{"at threshold", 80, 80, 60, 1},
		{"double threshold", 160, 80, 60, 60},
		{"half way", 120, 80, 60, 35},
		{"triple threshold", 240, 80, 60, 110},
		{"ratio equals base", 500, 80, 10, 10},
		{"ratio below base", 120, 80, 2, 6},
		{"clamped", 240, 80, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gain(tt.energy, tt.threshold, tt.ratio)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Gain(%v, %v, %v) = %v, want %v", tt.energy, tt.threshold, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestGainJumpsToBaseAboveThreshold(t *testing.T) {
	g := Gain(math.Nextafter(80, 100), 80, 60)
	if math.Abs(g-10) > 1e-9 {
		t.Fatalf("gain just above threshold = %v, want 10", g)
	}
}

func TestGainMonotonicAboveThreshold(t *testing.T) {
	for _, ratio := range []float64{0, 5, 10, 60, 200} {
		prev := Gain(80.001, 80, ratio)
		for e := 81.0; e < 1000; e += 7 {
			g := Gain(e, 80, ratio)
			if g < 0 {
				t.Fatalf("ratio %v energy %v: negative gain %v", ratio, e, g)
			}
			increasing := ratio >= baseGain
			if increasing && g < prev || !increasing && g > prev {
				t.Fatalf("ratio %v energy %v: gain %v not monotonic after %v", ratio, e, g, prev)
			}
			prev = g
		}
	}
}

func TestGainNonDecreasingInRatio(t *testing.T) {
	ratios := []float64{0, 1, 5, 9.5, 10, 10.5, 30, 60, 100, 500}

	for _, energy := range []float64{80.5, 100, 160, 400, 5000} {
		prev := Gain(energy, 80, ratios[0])
		for _, ratio := range ratios[1:] {
			g := Gain(energy, 80, ratio)
			if g < prev {
				t.Fatalf("energy %v: gain %v at ratio %v below %v at previous ratio", energy, g, ratio, prev)
			}
			prev = g
		}
	}

	// Below threshold the ratio has no effect.
	for _, ratio := range ratios {
		if g := Gain(50, 80, ratio); g != 1 {
			t.Fatalf("ratio %v below threshold: gain %v, want 1", ratio, g)
		}
	}
}

func TestGainCurveSummary(t *testing.T) {
	c := GainCurve{{1, 1, 12}, {1, 35, 1}}
	if c.Max() != 35 {
		t.Fatalf("Max() = %v, want 35", c.Max())
	}
	if c.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", c.Active())
	}
	if (GainCurve{}).Max() != 0 {
		t.Fatal("empty curve Max() should be 0")
	}
}
