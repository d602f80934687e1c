package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-multiband/dsp/band"
	"github.com/cwbudde/algo-multiband/internal/config"
)

func printBands(w io.Writer, cfg *config.Config, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}

	frame := cfg.Transform.FrameSize
	bins := frame/2 + 1

	bands, err := band.Split(bins, cfg.Dynamics.NumBands)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Frame size: %d  Bins: %d  Sample rate: %d Hz  Bands: %d\n",
		frame, bins, sampleRate, len(bands))
	if band.Degenerate(bins, len(bands)) {
		fmt.Fprintf(w, "Warning: %d bands exceed %d bins, trailing bands are empty\n", len(bands), bins)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Band\tStart\tEnd\tBins\tLow Hz\tHigh Hz\t\n")
	fmt.Fprintf(tw, "----\t-----\t---\t----\t------\t-------\t\n")

	for i, b := range bands {
		lo, hi := band.FrequencyRange(b, frame, float64(sampleRate))
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t\n", i, b.Start, b.End, b.Len(), lo, hi)
	}

	return tw.Flush()
}
