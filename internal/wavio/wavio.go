// Package wavio reads and writes PCM WAV files as per-channel sample
// buffers normalised to [-1, 1].
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// ErrUnsupported reports WAV data this package cannot convert.
var ErrUnsupported = errors.New("wavio: unsupported format")

// Audio is a decoded file.
type Audio struct {
	Channels   []*buffer.Buffer
	SampleRate int
	BitDepth   int
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return a.Channels[0].Len()
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a 16, 24 or 32 bit integer PCM WAV stream.
func Decode(r io.ReadSeeker) (*Audio, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("wavio: invalid WAV file")
	}

	if d.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d, only integer PCM is read", ErrUnsupported, d.WavAudioFormat)
	}

	depth := int(d.BitDepth)
	if !supportedDepth(depth) {
		return nil, fmt.Errorf("%w: bit depth %d", ErrUnsupported, depth)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not read PCM buffer: %w", err)
	}

	chans := pcm.Format.NumChannels
	if chans < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupported, chans)
	}

	data := make([]float64, len(pcm.Data)-len(pcm.Data)%chans)
	scale := 1 / fullScale(depth)
	for i := range data {
		data[i] = float64(pcm.Data[i]) * scale
	}

	bufs, err := buffer.Deinterleave(data, chans, pcm.Format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}

	return &Audio{
		Channels:   bufs,
		SampleRate: pcm.Format.SampleRate,
		BitDepth:   depth,
	}, nil
}

// WriteFile encodes chans as integer PCM at bitDepth into path.
func WriteFile(path string, chans []*buffer.Buffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output file creation error: %w", err)
	}

	if err := Encode(f, chans, bitDepth); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Encode writes chans as one interleaved integer PCM stream. Samples are
// clamped to [-1, 1] before quantisation.
func Encode(w io.WriteSeeker, chans []*buffer.Buffer, bitDepth int) error {
	if !supportedDepth(bitDepth) {
		return fmt.Errorf("%w: bit depth %d", ErrUnsupported, bitDepth)
	}

	interleaved, err := buffer.Interleave(chans)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	sampleRate := chans[0].SampleRate()
	for ch, b := range chans {
		if b.SampleRate() != sampleRate {
			return fmt.Errorf("wavio: channel %d sample rate %d differs from %d", ch, b.SampleRate(), sampleRate)
		}
	}

	full := fullScale(bitDepth)
	maxCode := full - 1
	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(math.Max(-full, math.Min(maxCode, v*full))))
	}

	pcm := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(chans),
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, len(chans), pcmFormat)
	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("data writing error: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not finalise WAV header: %w", err)
	}

	return nil
}

func supportedDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}
