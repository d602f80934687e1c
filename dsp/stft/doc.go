// Package stft implements a centered short-time Fourier transform and its
// overlap-add inverse.
//
// Frames are taken every HopSize samples from a signal padded by FrameSize/2
// on both sides, so that the first and last analysis windows are centered on
// the first and last input samples. The inverse divides the overlap-added
// synthesis by the overlapped squared-window envelope and trims the padding,
// returning exactly the original number of samples:
//
//	t, err := stft.New(stft.WithFrameSize(2048), stft.WithHopSize(512))
//	spec, err := t.Forward(samples)   // spec.Bins[bin][frame]
//	out, err := t.Inverse(spec)       // len(out) == len(samples)
//
// A Spectrogram holds FrameSize/2+1 bins per frame and FrameCount(len, hop)
// frames, which is ceil(len/hop)+1.
//
// An STFT owns FFT scratch buffers and is not safe for concurrent use.
// Create one instance per goroutine.
package stft
