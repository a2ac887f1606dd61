// SPDX-License-Identifier: EPL-2.0

// Command sampleloop loops one or two audio files on the default output
// device, or bounces the loop to a WAV file.
//
//	sampleloop -file drums.wav -jitter 0.1 -ramp 64
//	sampleloop -file drums.wav -file2 hit.ogg -level2 0.4 -bounce out.wav -seconds 20
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decred/slog"

	"github.com/ik5/sampleloop"
	"github.com/ik5/sampleloop/internal/device"
)

type options struct {
	file, file2     string
	level, level2   float64
	jitter          float64
	ramp            int
	maxDur, maxDur2 time.Duration
	rate, channels  int
	blockFrames     int
	mono            bool
	bounce          string
	seconds         float64
	logLevel        string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.file, "file", "", "audio file to loop (wav, aiff, mp3, ogg)")
	flag.StringVar(&o.file2, "file2", "", "optional second file, mixed on top")
	flag.Float64Var(&o.level, "level", 0.8, "level of the first file [0,1]")
	flag.Float64Var(&o.level2, "level2", 0.5, "level of the second file [0,1]")
	flag.Float64Var(&o.jitter, "jitter", 0, "random start offset as a fraction of the clip [0,1]")
	flag.IntVar(&o.ramp, "ramp", 0, "edge fade per block in frames [0,256]")
	flag.DurationVar(&o.maxDur, "max", sampleloop.DefaultMaxDuration, "longest accepted first file")
	flag.DurationVar(&o.maxDur2, "max2", 2*time.Second, "longest accepted second file")
	flag.IntVar(&o.rate, "rate", 48000, "output sample rate")
	flag.IntVar(&o.channels, "channels", 2, "output channels")
	flag.IntVar(&o.blockFrames, "block", 512, "frames per rendered block")
	flag.BoolVar(&o.mono, "mono", false, "downmix files to mono before looping")
	flag.StringVar(&o.bounce, "bounce", "", "write the loop to this WAV file instead of playing it")
	flag.Float64Var(&o.seconds, "seconds", 10, "length of the bounce, or of playback when > 0 (0 plays until interrupted)")
	flag.StringVar(&o.logLevel, "loglevel", "info", "log level: trace, debug, info, warn, error, off")
	flag.Parse()
	return o
}

func newLogger(level string) (slog.Logger, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	log := slog.NewBackend(os.Stderr).Logger("LOOP")
	log.SetLevel(lvl)
	return log, nil
}

func main() {
	o := parseFlags()
	if o.file == "" {
		fmt.Fprintln(os.Stderr, "usage: sampleloop -file <audio file> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log, err := newLogger(o.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(o, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(o options, log slog.Logger) error {
	common := []sampleloop.LooperOption{
		sampleloop.WithLogger(log),
		sampleloop.WithTargetRate(o.rate),
		sampleloop.WithMono(o.mono),
	}

	first := sampleloop.New(append(common,
		sampleloop.WithMaxDuration(o.maxDur),
		sampleloop.WithLevel(float32(o.level)),
	)...)
	if err := first.Load(o.file); err != nil {
		return err
	}

	sources := []sampleloop.Renderer{first}
	loopers := []*sampleloop.Looper{first}
	if o.file2 != "" {
		second := sampleloop.New(append(common,
			sampleloop.WithMaxDuration(o.maxDur2),
			sampleloop.WithLevel(float32(o.level2)),
		)...)
		if err := second.Load(o.file2); err != nil {
			return err
		}
		sources = append(sources, second)
		loopers = append(loopers, second)
	}

	for _, l := range loopers {
		l.SetRandomFraction(float32(o.jitter))
		l.SetRampLength(o.ramp)
	}

	var out sampleloop.Renderer = first
	if len(sources) > 1 {
		out = sampleloop.NewMixer(o.channels, o.blockFrames, sources...)
	}

	if o.bounce != "" {
		return bounce(o, out, log)
	}
	return play(o, out, log)
}

func bounce(o options, r sampleloop.Renderer, log slog.Logger) (err error) {
	f, err := os.Create(o.bounce)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	d := time.Duration(o.seconds * float64(time.Second))
	err = sampleloop.Bounce(f, r, sampleloop.BounceConfig{
		SampleRate:  o.rate,
		Channels:    o.channels,
		BlockFrames: o.blockFrames,
		Duration:    d,
	})
	if err != nil {
		return err
	}

	log.Infof("Wrote %v to %s", d, o.bounce)
	return nil
}

func play(o options, r sampleloop.Renderer, log slog.Logger) error {
	p, err := device.Open(device.Config{
		SampleRate:  o.rate,
		Channels:    o.channels,
		BlockFrames: o.blockFrames,
		Log:         log,
	})
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if o.seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(o.seconds*float64(time.Second)))
		defer cancel()
	}

	p.Attach(r)
	p.Start()
	log.Infof("Playing %s, press Ctrl-C to stop", o.file)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping")
			return nil
		case <-ticker.C:
			if err := p.Err(); err != nil {
				return fmt.Errorf("audio device: %w", err)
			}
		}
	}
}
