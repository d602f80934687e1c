package buffer

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-multiband/dsp/core"
)

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	data := []float64{1, -1, 2, -2, 3, -3}

	chans, err := Deinterleave(data, 2, 44100)
	if err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("channels = %d, want 2", len(chans))
	}

	left := chans[0].Samples()
	right := chans[1].Samples()
	for i := range 3 {
		if left[i] != float64(i+1) || right[i] != -float64(i+1) {
			t.Fatalf("frame %d = (%v, %v)", i, left[i], right[i])
		}
	}

	back, err := Interleave(chans)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	for i := range data {
		if back[i] != data[i] {
			t.Fatalf("sample %d = %v, want %v", i, back[i], data[i])
		}
	}
}

func TestDeinterleaveRejectsRaggedInput(t *testing.T) {
	if _, err := Deinterleave([]float64{1, 2, 3}, 2, 44100); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if _, err := Deinterleave([]float64{1}, 0, 44100); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestInterleaveRejectsUnequalChannels(t *testing.T) {
	_, err := Interleave([]*Buffer{New(3, 44100), New(2, 44100)})
	if !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	if _, err := Interleave(nil); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
