// Package multiband runs the complete spectral dynamics pipeline on sample
// buffers: centered STFT, band split, per-band gain and inverse overlap-add.
//
// [Process] handles one channel. [ProcessChannels] processes several channels
// of equal sample rate concurrently, each with its own transform, and
// returns the results in input order.
package multiband
