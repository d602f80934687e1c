// Package buffer provides the sample container handed between the audio
// front end and the processing pipeline: a float64 sample slice paired with
// its sample rate. Helpers cover the bookkeeping around processing, such as
// splitting interleaved frames into channels, peak measurement and gain
// staging before re-encoding.
package buffer
