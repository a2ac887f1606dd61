// SPDX-License-Identifier: EPL-2.0

package sampleloop

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/decred/slog"

	"github.com/ik5/sampleloop/audio"
	"github.com/ik5/sampleloop/loop"
)

// DefaultMaxDuration is the longest clip a Looper accepts unless
// WithMaxDuration says otherwise.
const DefaultMaxDuration = 5 * time.Second

// Looper is the control surface for one looping clip. Load, Clear and the
// setters may be called from any goroutine; Render belongs to the audio
// device callback.
type Looper struct {
	log         slog.Logger
	registry    *audio.Registry
	maxDuration time.Duration
	targetRate  int
	mono        bool
	level       float32
	rendererOpt []loop.RendererOption

	store    loop.Store
	params   loop.Params
	renderer *loop.Renderer
}

// LooperOption configures a Looper.
type LooperOption func(*Looper)

// WithLogger sets the logger used for load results. Defaults to
// slog.Disabled.
func WithLogger(log slog.Logger) LooperOption {
	return func(l *Looper) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMaxDuration rejects clips at least d long. Zero disables the limit.
func WithMaxDuration(d time.Duration) LooperOption {
	return func(l *Looper) {
		l.maxDuration = max(d, 0)
	}
}

// WithTargetRate resamples every loaded clip to rate, normally the device
// rate. Zero keeps the file rate.
func WithTargetRate(rate int) LooperOption {
	return func(l *Looper) {
		l.targetRate = max(rate, 0)
	}
}

// WithMono downmixes loaded clips to a single channel, which the renderer
// then plays on every output channel.
func WithMono(mono bool) LooperOption {
	return func(l *Looper) {
		l.mono = mono
	}
}

// WithRegistry replaces the decoders used by Load and LoadReader.
func WithRegistry(r *audio.Registry) LooperOption {
	return func(l *Looper) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithLevel sets the initial output level. Defaults to 1.
func WithLevel(level float32) LooperOption {
	return func(l *Looper) {
		l.level = level
	}
}

// WithRendererOptions passes options to the underlying loop.Renderer.
func WithRendererOptions(opts ...loop.RendererOption) LooperOption {
	return func(l *Looper) {
		l.rendererOpt = append(l.rendererOpt, opts...)
	}
}

// New returns an empty Looper; it renders silence until a clip is loaded.
func New(opts ...LooperOption) *Looper {
	l := &Looper{
		log:         slog.Disabled,
		maxDuration: DefaultMaxDuration,
		level:       1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = DefaultRegistry()
	}

	l.params.SetLevel(l.level)
	l.renderer = loop.NewRenderer(&l.store, &l.params, l.rendererOpt...)
	return l
}

// SetLevel sets the output level in [0, 1]. The change is ramped over the
// next rendered block.
func (l *Looper) SetLevel(level float32) { l.params.SetLevel(level) }

// SetRandomFraction sets the jitter range as a fraction of the clip length.
// 0 plays the loop straight.
func (l *Looper) SetRandomFraction(fraction float32) { l.params.SetRandomFraction(fraction) }

// SetRampLength sets the per-block edge fade in frames, up to
// loop.MaxRampLength. 0 disables it.
func (l *Looper) SetRampLength(frames int) { l.params.SetRampLength(frames) }

// Params exposes the current knob values.
func (l *Looper) Params() loop.Snapshot { return l.params.Snapshot() }

// Clip returns the clip being played; nil or empty when none is loaded.
func (l *Looper) Clip() *audio.Buffer { return l.store.Current() }

// Load decodes the file at path, picking the decoder by extension, and
// starts looping it from the beginning. On failure the previous clip keeps
// playing.
func (l *Looper) Load(path string) error {
	dec, format, ok := l.registry.ForPath(path)
	if !ok {
		err := fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, filepath.Ext(path))
		l.log.Errorf("Unable to load %s: %v", path, err)
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		l.log.Errorf("Unable to open %s: %v", path, err)
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	l.log.Debugf("Decoding %s as %s", path, format)
	return l.load(filepath.Base(path), dec, f)
}

// LoadReader is Load for data that is not in a file. format is a registry
// key such as FormatWAV.
func (l *Looper) LoadReader(format string, r io.Reader) error {
	dec, ok := l.registry.Get(format)
	if !ok {
		err := fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, format)
		l.log.Errorf("Unable to load stream: %v", err)
		return err
	}

	return l.load(format+" stream", dec, r)
}

func (l *Looper) load(name string, dec audio.Decoder, r io.Reader) error {
	buf, err := l.decode(dec, r)
	if err != nil {
		l.log.Errorf("Unable to load %s: %v", name, err)
		return err
	}

	if err := l.store.Load(buf); err != nil {
		l.log.Errorf("Unable to load %s: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}

	l.log.Infof("Looping %s: %d channels, %d frames at %d Hz (%s)",
		name, buf.Channels(), buf.Frames(), buf.SampleRate, buf.Duration())
	return nil
}

func (l *Looper) decode(dec audio.Decoder, r io.Reader) (*audio.Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrUnsupportedFormat, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, l.maxDuration)
	if err != nil {
		return nil, err
	}

	if l.mono {
		buf = audio.Downmix(buf)
	}
	if l.targetRate > 0 && buf.SampleRate != l.targetRate {
		l.log.Debugf("Resampling from %d Hz to %d Hz", buf.SampleRate, l.targetRate)
		if buf, err = audio.Resample(buf, l.targetRate); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// Clear stops playback; Render outputs silence until the next Load.
func (l *Looper) Clear() {
	l.store.Clear()
	l.log.Debug("Cleared clip")
}

// Render writes the next block of the loop. It never blocks or allocates.
func (l *Looper) Render(b loop.Block) {
	l.renderer.Render(b)
}
