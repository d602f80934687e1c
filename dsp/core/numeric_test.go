package core

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		finite   bool
		positive bool
	}{
		{name: "positive", value: 2, finite: true, positive: true},
		{name: "zero", value: 0, finite: true, positive: false},
		{name: "negative", value: -3, finite: true, positive: false},
		{name: "nan", value: math.NaN(), finite: false, positive: false},
		{name: "+inf", value: math.Inf(1), finite: false, positive: false},
		{name: "-inf", value: math.Inf(-1), finite: false, positive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.value); got != tt.finite {
				t.Fatalf("IsFinite(%v) = %v, want %v", tt.value, got, tt.finite)
			}
			if got := IsFinitePositive(tt.value); got != tt.positive {
				t.Fatalf("IsFinitePositive(%v) = %v, want %v", tt.value, got, tt.positive)
			}
		})
	}
}

func TestFirstNonFinite(t *testing.T) {
	if idx := FirstNonFinite([]float64{0, 1, -1}); idx != -1 {
		t.Fatalf("FirstNonFinite() = %d, want -1", idx)
	}
	if idx := FirstNonFinite([]float64{0, math.Inf(1), math.NaN()}); idx != 1 {
		t.Fatalf("FirstNonFinite() = %d, want 1", idx)
	}
	if idx := FirstNonFinite(nil); idx != -1 {
		t.Fatalf("FirstNonFinite(nil) = %d, want -1", idx)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if math.Abs(db+6) > 1e-10 {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestErrorKindsWrap(t *testing.T) {
	err := fmt.Errorf("stft: %w: hop size must be > 0: %d", ErrInvalidInput, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("errors.Is(%v, ErrInvalidInput) = false", err)
	}
	if errors.Is(err, ErrShapeMismatch) {
		t.Fatal("wrapped error must not match another kind")
	}
}
