package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns re, im and magnitude slices of length n backed by one
// pooled allocation.
func getScratch(n int) (re, im, mag []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, _, buf := getScratch(len(in))
	unpack(re, im, in)

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MeanMagnitude returns the arithmetic mean of |X[k]| over in.
// An empty input has mean 0.
func MeanMagnitude(in []complex128) float64 {
	if len(in) == 0 {
		return 0
	}

	re, im, mag, buf := getScratch(len(in))
	unpack(re, im, in)
	vecmath.Magnitude(mag, re, im)

	sum := 0.0
	for _, m := range mag {
		sum += m
	}
	putScratch(buf)

	return sum / float64(len(in))
}

// BinFrequency returns the center frequency in Hz of bin k for a transform
// of frameSize samples.
func BinFrequency(k, frameSize int, sampleRate float64) float64 {
	if frameSize <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(frameSize)
}

func unpack(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
