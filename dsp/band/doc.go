// Package band partitions the frequency bins of a spectrogram into
// contiguous, non-overlapping bands.
//
// [Split] follows array-split semantics: every band receives
// binCount/numBands bins and the first binCount%numBands bands receive one
// extra. Requesting more bands than bins is allowed; the trailing bands are
// then empty and [Degenerate] reports the condition.
package band
