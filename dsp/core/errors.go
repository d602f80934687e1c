package core

import "errors"

// Error kinds shared by all processing packages. Callers match them with
// errors.Is; packages wrap them with context describing the offending value.
var (
	// ErrInvalidInput reports unusable sample data or transform settings:
	// empty buffers, non-positive sample rates, frame or hop sizes out of range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration reports dynamics parameters outside their domain
	// (band count < 1, threshold <= 0, negative ratio).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrShapeMismatch reports a spectrogram or band partition whose dimensions
	// disagree with the transform configuration it is used with.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNonFinite reports NaN or Inf values in a processing result.
	ErrNonFinite = errors.New("non-finite result")
)
