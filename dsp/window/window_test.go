package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-multiband/dsp/core"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64, WithPeriodic())
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGoldenHann(t *testing.T) {
	sym := Generate(TypeHann, 4)
	wantSym := []float64{0, 0.75, 0.75, 0}
	per := Generate(TypeHann, 4, WithPeriodic())
	wantPer := []float64{0, 0.5, 1, 0.5}

	for i := range 4 {
		if !almostEqual(sym[i], wantSym[i], 1e-12) {
			t.Fatalf("symmetric[%d] = %v, want %v", i, sym[i], wantSym[i])
		}
		if !almostEqual(per[i], wantPer[i], 1e-12) {
			t.Fatalf("periodic[%d] = %v, want %v", i, per[i], wantPer[i])
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)

	b := Generate(TypeHann, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

// Periodic Hann squared, overlapped at a quarter-frame hop, sums to a constant.
func TestSquaredHannOverlapIsConstant(t *testing.T) {
	const size, hop = 64, 16

	sq := Squared(Generate(TypeHann, size, WithPeriodic()))

	for n := range hop {
		sum := 0.0
		for k := 0; k*hop+n < size; k++ {
			sum += sq[k*hop+n]
		}
		if !almostEqual(sum, 1.5, 1e-12) {
			t.Fatalf("envelope at %d = %v, want 1.5", n, sum)
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{0, 0.5, 1, 0.5}
	dst := make([]float64, 4)

	if err := ApplyCoefficients(dst, samples, coeffs); err != nil {
		t.Fatalf("ApplyCoefficients() error = %v", err)
	}

	want := []float64{0, 1, 3, 2}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if err := ApplyCoefficients(dst[:2], samples, coeffs); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{in: "hann", want: TypeHann, ok: true},
		{in: " Hamming ", want: TypeHamming, ok: true},
		{in: "BLACKMAN", want: TypeBlackman, ok: true},
		{in: "rectangular", want: TypeRectangular, ok: true},
		{in: "kaiser"},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseType(%q) error = %v, ok %v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if s := Type(99).String(); s != "window(99)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("length-1 window = %v", w)
	}
	if sq := Squared(nil); sq != nil {
		t.Fatalf("Squared(nil) = %v, want nil", sq)
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
