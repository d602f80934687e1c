// Package dynamics applies per-band gain to a spectrogram.
//
// A [BandCompressor] measures the energy of each band in every frame as the
// mean bin magnitude and maps it through [Gain]. Bands at or below the
// threshold pass unchanged. Bands above it are scaled by a factor that starts
// at 10 and moves linearly towards Ratio as the energy reaches twice the
// threshold, so with the default parameters loud bands are boosted rather
// than attenuated.
//
// All gains are applied as real scalars to both parts of each complex bin,
// which preserves phase.
package dynamics
