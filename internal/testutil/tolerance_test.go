package testutil

import (
	"math"
	"testing"
)

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -3, 3, -3}); got != 3 {
		t.Fatalf("RMS = %v, want 3", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
}

func TestNormalizedRMSError(t *testing.T) {
	want := []float64{1, -1, 1, -1}
	got := []float64{1.1, -0.9, 1.1, -0.9}

	if e := NormalizedRMSError(got, want); math.Abs(e-0.1) > 1e-12 {
		t.Fatalf("NormalizedRMSError = %v, want 0.1", e)
	}
	if e := NormalizedRMSError(want, want); e != 0 {
		t.Fatalf("identical slices error = %v, want 0", e)
	}
	if e := NormalizedRMSError(want[:2], want); !math.IsInf(e, 1) {
		t.Fatalf("length mismatch error = %v, want +Inf", e)
	}
	if e := NormalizedRMSError([]float64{0.5, 0.5}, []float64{0, 0}); e != 0.5 {
		t.Fatalf("silent reference error = %v, want 0.5", e)
	}
}
