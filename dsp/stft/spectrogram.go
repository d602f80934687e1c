package stft

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/core"
)

// Spectrogram is a complex time-frequency matrix indexed [bin][frame].
type Spectrogram struct {
	// Bins holds one row per frequency bin; every row has NumFrames values.
	Bins [][]complex128

	FrameSize int
	HopSize   int

	// Length is the number of input samples the spectrogram was computed
	// from. The inverse transform trims its output to exactly this length.
	Length int
}

// FrameCount returns the number of centered frames for length input samples
// at the given hop: ceil(length/hop) + 1. Zero for non-positive arguments.
func FrameCount(length, hop int) int {
	if length <= 0 || hop <= 0 {
		return 0
	}
	return (length+hop-1)/hop + 1
}

// NewSpectrogram allocates a zeroed spectrogram shaped for length input
// samples transformed with frameSize and hopSize.
func NewSpectrogram(frameSize, hopSize, length int) *Spectrogram {
	bins := frameSize/2 + 1
	frames := FrameCount(length, hopSize)

	data := make([]complex128, bins*frames)
	rows := make([][]complex128, bins)
	for k := range rows {
		rows[k] = data[k*frames : (k+1)*frames : (k+1)*frames]
	}

	return &Spectrogram{
		Bins:      rows,
		FrameSize: frameSize,
		HopSize:   hopSize,
		Length:    length,
	}
}

// NumBins returns the number of frequency bins.
func (s *Spectrogram) NumBins() int {
	return len(s.Bins)
}

// NumFrames returns the number of time frames.
func (s *Spectrogram) NumFrames() int {
	if len(s.Bins) == 0 {
		return 0
	}
	return len(s.Bins[0])
}

// Clone returns a deep copy.
func (s *Spectrogram) Clone() *Spectrogram {
	frames := s.NumFrames()
	data := make([]complex128, len(s.Bins)*frames)
	rows := make([][]complex128, len(s.Bins))
	for k, row := range s.Bins {
		rows[k] = data[k*frames : (k+1)*frames : (k+1)*frames]
		copy(rows[k], row)
	}

	return &Spectrogram{
		Bins:      rows,
		FrameSize: s.FrameSize,
		HopSize:   s.HopSize,
		Length:    s.Length,
	}
}

// Column copies bins [start, end) of one frame into dst and returns it,
// reusing dst capacity when possible.
func (s *Spectrogram) Column(dst []complex128, frame, start, end int) []complex128 {
	n := end - start
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]complex128, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = s.Bins[start+i][frame]
	}
	return dst
}

// CheckShape reports whether s is a well-formed spectrogram for a transform
// with the given frame and hop size.
func (s *Spectrogram) CheckShape(frameSize, hopSize int) error {
	if s == nil {
		return fmt.Errorf("%w: spectrogram is nil", core.ErrShapeMismatch)
	}
	if s.FrameSize != frameSize || s.HopSize != hopSize {
		return fmt.Errorf("%w: spectrogram framed with size %d hop %d, transform uses size %d hop %d",
			core.ErrShapeMismatch, s.FrameSize, s.HopSize, frameSize, hopSize)
	}
	if s.Length <= 0 {
		return fmt.Errorf("%w: spectrogram length must be > 0: %d", core.ErrShapeMismatch, s.Length)
	}

	wantBins := frameSize/2 + 1
	if len(s.Bins) != wantBins {
		return fmt.Errorf("%w: spectrogram has %d bins, want %d", core.ErrShapeMismatch, len(s.Bins), wantBins)
	}

	wantFrames := FrameCount(s.Length, hopSize)
	for k, row := range s.Bins {
		if len(row) != wantFrames {
			return fmt.Errorf("%w: bin %d has %d frames, want %d for length %d",
				core.ErrShapeMismatch, k, len(row), wantFrames, s.Length)
		}
	}

	return nil
}
