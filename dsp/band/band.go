package band

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/spectrum"
)

// Band is the half-open bin range [Start, End).
type Band struct {
	Start int
	End   int
}

// Len returns the number of bins in the band.
func (b Band) Len() int { return b.End - b.Start }

// Empty reports whether the band holds no bins.
func (b Band) Empty() bool { return b.End <= b.Start }

// Contains reports whether bin lies inside the band.
func (b Band) Contains(bin int) bool { return bin >= b.Start && bin < b.End }

// String formats the band as "[start,end)".
func (b Band) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Split partitions binCount bins into numBands ordered contiguous bands that
// together cover [0, binCount).
func Split(binCount, numBands int) ([]Band, error) {
	if numBands < 1 {
		return nil, fmt.Errorf("band: %w: band count must be >= 1: %d", core.ErrInvalidConfiguration, numBands)
	}
	if binCount < 0 {
		return nil, fmt.Errorf("band: %w: bin count must be >= 0: %d", core.ErrInvalidInput, binCount)
	}

	base := binCount / numBands
	extra := binCount % numBands

	bands := make([]Band, numBands)
	start := 0
	for i := range bands {
		size := base
		if i < extra {
			size++
		}
		bands[i] = Band{Start: start, End: start + size}
		start += size
	}

	return bands, nil
}

// Degenerate reports whether Split(binCount, numBands) yields empty bands.
func Degenerate(binCount, numBands int) bool {
	return numBands > binCount
}

// CheckPartition verifies that bands are ordered, contiguous and cover
// exactly [0, binCount).
func CheckPartition(bands []Band, binCount int) error {
	if len(bands) == 0 {
		return fmt.Errorf("band: %w: no bands", core.ErrShapeMismatch)
	}

	next := 0
	for i, b := range bands {
		if b.Start != next || b.End < b.Start {
			return fmt.Errorf("band: %w: band %d is %v, want start %d",
				core.ErrShapeMismatch, i, b, next)
		}
		next = b.End
	}

	if next != binCount {
		return fmt.Errorf("band: %w: bands cover %d bins, spectrogram has %d",
			core.ErrShapeMismatch, next, binCount)
	}

	return nil
}

// FrequencyRange returns the lower and upper edge in Hz of b for a transform
// of frameSize samples. Edges lie half a bin outside the first and last bin
// centre, clamped to [0, sampleRate/2]. An empty band returns the position
// of its start twice.
func FrequencyRange(b Band, frameSize int, sampleRate float64) (lowHz, highHz float64) {
	if frameSize <= 0 || sampleRate <= 0 {
		return 0, 0
	}

	halfBin := spectrum.BinFrequency(1, frameSize, sampleRate) / 2
	nyquist := sampleRate / 2

	if b.Empty() {
		f := min(spectrum.BinFrequency(b.Start, frameSize, sampleRate), nyquist)
		return f, f
	}

	lowHz = max(spectrum.BinFrequency(b.Start, frameSize, sampleRate)-halfBin, 0)
	highHz = min(spectrum.BinFrequency(b.End-1, frameSize, sampleRate)+halfBin, nyquist)

	return lowHz, highHz
}
