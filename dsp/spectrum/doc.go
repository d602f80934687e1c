// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement an FFT itself. It operates on complex bins
// produced by the STFT and provides the magnitude reductions the band
// compressor needs, bin-to-frequency mapping, and a Goertzel single-tone
// detector for measuring specific frequencies in time-domain output.
package spectrum
