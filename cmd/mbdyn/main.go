// Command mbdyn applies spectral multiband dynamics to a WAV file.
//
// Usage:
//
//	mbdyn [flags] -in input.wav [-out output.wav]
//
// Settings are taken from built-in defaults, then an optional YAML preset
// (-config), then MBDYN_* environment variables (optionally read from -env
// files), then command-line flags.
//
// Examples:
//
//	mbdyn -in voice.wav
//	mbdyn -in mix.wav -out mix_dyn.wav -bands 16 -threshold 40 -ratio 4
//	mbdyn -config preset.yaml -env .env -in mix.wav -normalize
//	mbdyn -list-bands -rate 48000 -frame 1024
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
	"github.com/cwbudde/algo-multiband/dsp/core"
	"github.com/cwbudde/algo-multiband/dsp/multiband"
	"github.com/cwbudde/algo-multiband/internal/config"
	"github.com/cwbudde/algo-multiband/internal/logging"
	"github.com/cwbudde/algo-multiband/internal/wavio"
	"github.com/sirupsen/logrus"
)

// normalizeCeilingDB is the peak level used by -normalize.
const normalizeCeilingDB = -0.1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in         string
	configPath string
	envFiles   string
	listBands  bool
	rate       int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mbdyn", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.StringVar(&opt.in, "in", "", "input WAV file")
	fs.StringVar(&opt.configPath, "config", "", "YAML preset file")
	fs.StringVar(&opt.envFiles, "env", "", "comma-separated .env files for MBDYN_* overrides")
	fs.BoolVar(&opt.listBands, "list-bands", false, "print the band partition and exit")
	fs.IntVar(&opt.rate, "rate", 44100, "sample rate for -list-bands when no -in is given")

	def := config.Default()
	out := fs.String("out", def.Output.Path, "output WAV file")
	bands := fs.Int("bands", def.Dynamics.NumBands, "number of frequency bands")
	threshold := fs.Float64("threshold", def.Dynamics.Threshold, "band energy threshold (mean bin magnitude)")
	ratio := fs.Float64("ratio", def.Dynamics.Ratio, "gain reached at twice the threshold")
	frame := fs.Int("frame", def.Transform.FrameSize, "STFT frame size (power of two)")
	hop := fs.Int("hop", def.Transform.HopSize, "STFT hop size (0 = frame/4)")
	win := fs.String("window", def.Transform.Window, "window: hann, hamming, blackman, rectangular")
	pad := fs.String("pad", def.Transform.Pad, "edge padding: reflect or zero")
	bits := fs.Int("bits", def.Output.BitDepth, "output bit depth: 16, 24 or 32")
	normalize := fs.Bool("normalize", def.Output.Normalize, "normalize output peak to -0.1 dBFS instead of clipping")
	logLevel := fs.String("log-level", def.Logging.Level, "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", def.Logging.Format, "log format: text or json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mbdyn [flags] -in input.wav [-out output.wav]\n\n")
		fmt.Fprintf(stderr, "Applies spectral multiband dynamics to a WAV file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Path = *out
		case "bands":
			cfg.Dynamics.NumBands = *bands
		case "threshold":
			cfg.Dynamics.Threshold = *threshold
		case "ratio":
			cfg.Dynamics.Ratio = *ratio
		case "frame":
			cfg.Transform.FrameSize = *frame
		case "hop":
			cfg.Transform.HopSize = *hop
		case "window":
			cfg.Transform.Window = *win
		case "pad":
			cfg.Transform.Pad = *pad
		case "bits":
			cfg.Output.BitDepth = *bits
		case "normalize":
			cfg.Output.Normalize = *normalize
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewWithOutput(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	if opt.listBands {
		rate := opt.rate
		if opt.in != "" {
			a, err := wavio.ReadFile(opt.in)
			if err != nil {
				return err
			}
			rate = a.SampleRate
		}
		return printBands(stdout, cfg, rate)
	}

	if opt.in == "" {
		fs.Usage()
		return errors.New("missing -in")
	}

	return process(ctx, cfg, opt.in, log)
}

func loadConfig(opt options) (*config.Config, error) {
	cfg := config.Default()
	if opt.configPath != "" {
		var err error
		if cfg, err = config.Load(opt.configPath); err != nil {
			return nil, err
		}
	}

	var files []string
	for _, f := range strings.Split(opt.envFiles, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}

	lookup, err := config.Environ(files...)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

func process(ctx context.Context, cfg *config.Config, in string, log *logrus.Logger) error {
	a, err := wavio.ReadFile(in)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	log.WithFields(logrus.Fields{
		"file":        in,
		"channels":    len(a.Channels),
		"sample_rate": a.SampleRate,
		"bit_depth":   a.BitDepth,
		"frames":      a.Frames(),
		"duration":    a.Channels[0].Duration(),
	}).Info("input loaded")

	p := cfg.Params()
	res, err := multiband.ProcessChannels(ctx, a.Channels, p, cfg.Options(log)...)
	if err != nil {
		return err
	}

	peak := 0.0
	for _, b := range res {
		peak = max(peak, b.Peak())
	}

	if cfg.Output.Normalize {
		if peak > 0 {
			gain := core.DBToLinear(normalizeCeilingDB) / peak
			for _, b := range res {
				b.Scale(gain)
			}
			log.WithField("gain_db", core.LinearToDB(gain)).Info("output normalized")
		}
	} else if clipped := clip(res); clipped > 0 {
		log.WithFields(logrus.Fields{
			"clipped": clipped,
			"peak_db": core.LinearToDB(peak),
		}).Warn("output exceeds full scale and was clipped, consider -normalize")
	}

	if err := wavio.WriteFile(cfg.Output.Path, res, cfg.Output.BitDepth); err != nil {
		return fmt.Errorf("%s: %w", cfg.Output.Path, err)
	}

	log.WithFields(logrus.Fields{
		"file":      cfg.Output.Path,
		"bands":     p.NumBands,
		"threshold": p.Threshold,
		"ratio":     p.Ratio,
	}).Info("output written")

	return nil
}

func clip(chans []*buffer.Buffer) int {
	n := 0
	for _, b := range chans {
		n += b.Clip(1)
	}
	return n
}
